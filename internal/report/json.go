package report

import (
	"encoding/json"
	"io"
	"path/filepath"

	apperrors "github.com/solomon-platform/gorm-postgres-enforcer/internal/pkg/errors"
)

type jsonReport struct {
	Tool       string          `json:"tool"`
	Version    string          `json:"version"`
	RunID      string          `json:"run_id"`
	Root       string          `json:"root"`
	Violations []jsonViolation `json:"violations"`
}

type jsonViolation struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	RuleID  string `json:"rule_id"`
	Message string `json:"message"`
}

// WriteJSON renders the machine-readable envelope. Paths are normalized to
// forward slashes and violations is always an array, never null.
func WriteJSON(w io.Writer, rep Report) error {
	out := jsonReport{
		Tool:       rep.Tool,
		Version:    rep.Version,
		RunID:      rep.RunID,
		Root:       filepath.ToSlash(rep.Root),
		Violations: make([]jsonViolation, 0, len(rep.Violations)),
	}
	for _, v := range rep.Violations {
		out.Violations = append(out.Violations, jsonViolation{
			Path:    filepath.ToSlash(v.Path),
			Line:    v.Line,
			RuleID:  v.RuleID,
			Message: v.Message,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return apperrors.EncodeFailed(FormatJSON, err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return apperrors.EncodeFailed(FormatJSON, err)
	}
	return nil
}
