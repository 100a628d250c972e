// Package model defines the value types shared by every layer of the align
// CLI: the alignment mode, the width bounds and defaults, and the exit
// codes together with the CLIError type that carries them.
//
// The package has no external dependencies and performs no I/O.
package model
