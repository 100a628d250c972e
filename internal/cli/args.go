package cli

import (
	"fmt"

	"github.com/shinji-kodama/align/internal/config"
	"github.com/shinji-kodama/align/internal/model"
)

// ParseArgs applies positional tokens on top of base.
//
// Each token is either a mode keyword (left, right, center, justify) or a
// decimal width in [1, 255]. Tokens may come in any order and the last one
// of each kind wins. The first token that is neither aborts parsing with a
// CLIError carrying ExitGeneralError.
func ParseArgs(tokens []string, base config.Settings) (config.Settings, error) {
	s := base
	for _, tok := range tokens {
		if mode, err := model.ParseAlignment(tok); err == nil {
			s.Mode = mode
			continue
		}

		width, err := model.ParseWidth(tok)
		if err != nil {
			return base, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("please supply a valid argument: %q is neither an alignment (left, right, center, justify) nor a width (%d-%d)",
					tok, model.MinWidth, model.MaxWidth),
				err)
		}
		s.Width = width
	}
	return s, nil
}
