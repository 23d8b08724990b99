package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/solomon-platform/gorm-postgres-enforcer/internal/model"
	"github.com/solomon-platform/gorm-postgres-enforcer/internal/rules"
)

// ScanFile applies the rule set to one file and returns its violations in
// line order. Paths in the returned records are relative to root.
//
// Files are expected to be UTF-8; anything that is not decodes as Latin-1
// so that stray high bytes in legacy sources cannot abort a scan.
func ScanFile(path, root string) ([]model.Violation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text := string(data)
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		text = string(decoded)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, fmt.Errorf("relativize %s: %w", path, err)
	}

	var violations []model.Violation
	for i, line := range strings.Split(text, "\n") {
		n := i + 1

		if rules.IsAllowed(line) {
			continue
		}
		if rules.IsImport(line) {
			violations = append(violations, model.Violation{
				Path:    rel,
				Line:    n,
				RuleID:  rules.RuleForbiddenImport,
				Message: rules.ImportMessage,
			})
			continue
		}
		// A single line can trip both remaining rules; both are recorded.
		if rules.IsSprintfSQL(line) {
			violations = append(violations, model.Violation{
				Path:    rel,
				Line:    n,
				RuleID:  rules.RuleSprintfSQL,
				Message: rules.SprintfMessage,
			})
		}
		if pat, ok := rules.MatchCall(line); ok {
			violations = append(violations, model.Violation{
				Path:    rel,
				Line:    n,
				RuleID:  rules.RuleRawSQLCall,
				Message: rules.CallMessage(pat),
			})
		}
	}
	return violations, nil
}
