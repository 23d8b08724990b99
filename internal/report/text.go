package report

import (
	"fmt"
	"io"

	apperrors "github.com/solomon-platform/gorm-postgres-enforcer/internal/pkg/errors"
)

// WriteText renders the line-oriented gate output. The format is a stable
// contract: CI jobs grep these lines, so the header, the per-violation
// shape "- <path>:<line>: <message>", and the clean-tree line must not
// change between releases.
func WriteText(w io.Writer, rep Report) error {
	if len(rep.Violations) == 0 {
		if _, err := fmt.Fprintf(w, "%s: no raw SQL violations found\n", rep.Tool); err != nil {
			return apperrors.EncodeFailed(FormatText, err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s: violations found\n", rep.Tool); err != nil {
		return apperrors.EncodeFailed(FormatText, err)
	}
	for _, v := range rep.Violations {
		if _, err := fmt.Fprintf(w, "- %s:%d: %s\n", v.Path, v.Line, v.Message); err != nil {
			return apperrors.EncodeFailed(FormatText, err)
		}
	}
	return nil
}
