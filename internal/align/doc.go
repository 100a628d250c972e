// Package align implements the line-wrapping and justification engine.
//
// Each input line is handled on its own:
//
//   - Lines that look like markup (blank, or starting with '|', '*', '-' or
//     '#' after trimming) are passed through untouched.
//   - Everything else is split into words, the words are greedily packed
//     into slugs no wider than the target width, and every slug is
//     post-processed according to the alignment mode.
//
// Justification widens interior spacing using a small table of
// punctuation-first replacement rules, alternating the scan direction on
// successive slugs so extra spaces do not all pile up on one side.
//
// Widths are measured in bytes. Multi-byte characters count once per byte
// and are never split, because words are never split.
package align
