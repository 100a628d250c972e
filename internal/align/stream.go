package align

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Stream aligns r line by line and writes the result to w.
//
// The input is split on '\n' and every piece is aligned on its own,
// including the empty piece that follows a trailing newline. Outputs are
// separated by a single '\n', so a trailing newline in the input yields
// one in the output and no newline is added otherwise.
func (a *Aligner) Stream(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	lines := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read input: %w", readErr)
		}

		if lines > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if _, err := bw.WriteString(a.AlignLine(strings.TrimSuffix(raw, "\n"))); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		lines++

		if readErr != nil {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if a.Logger != nil {
		a.Logger.Debug("aligned input", slog.Int("lines", lines))
	}
	return nil
}
