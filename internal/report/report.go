// Package report renders scan results for people and for CI tooling.
//
// Three encodings are supported: text (the gate output CI greps), json
// (machine-readable envelope), and sarif (SARIF 2.1.0 for code-scanning
// upload). All encodings are written even when the scan is clean, so a
// pipeline step can always parse its input.
package report

import (
	"io"

	"github.com/solomon-platform/gorm-postgres-enforcer/internal/model"
	apperrors "github.com/solomon-platform/gorm-postgres-enforcer/internal/pkg/errors"
)

// Supported output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

// Report is the envelope handed to every writer. Violations are already in
// final order; writers must not reorder them.
type Report struct {
	Tool       string
	Version    string
	RunID      string
	Root       string
	Violations []model.Violation
}

// Write renders the report in the requested format.
func Write(w io.Writer, format string, rep Report) error {
	switch format {
	case FormatText:
		return WriteText(w, rep)
	case FormatJSON:
		return WriteJSON(w, rep)
	case FormatSARIF:
		return WriteSARIF(w, rep)
	default:
		return apperrors.OutputInvalid(format)
	}
}
