// Package rules defines the fixed raw-SQL detection policy.
//
// The rule set is built in and not configurable at runtime; every repository
// the tool runs against is held to the same policy. There are three kinds of
// checks plus one escape hatch:
//
//   - forbidden call patterns: direct database/sql API invocations
//     (Query, Exec, Prepare and their Row/Context variants);
//   - the forbidden import: a line importing "database/sql";
//   - a heuristic for SQL string construction via fmt.Sprintf;
//   - the allow marker, which exempts a single line from all checks.
//
// All matching is line-scoped and textual. Call patterns tolerate arbitrary
// whitespace around the dot and the opening parenthesis, so formatting
// tricks do not hide a call. Within one line the call patterns are tried in
// table order and the first match wins.
package rules

import (
	"regexp"
	"strings"
)

// AllowMarker exempts a line from every check. Putting it in a trailing
// comment is the intended use:
//
//	rows, err := tx.Query(q) // gorm-postgres-enforcer: allow-raw-sql
const AllowMarker = "gorm-postgres-enforcer: allow-raw-sql"

// Rule identifiers carried on violations for machine-readable output.
const (
	RuleRawSQLCall      = "raw-sql-call"
	RuleForbiddenImport = "forbidden-import"
	RuleSprintfSQL      = "sprintf-sql"
)

// Violation messages. ImportMessage and SprintfMessage are fixed strings;
// call-pattern messages embed the matched pattern source (see CallMessage).
const (
	ImportMessage  = `forbidden import "database/sql"`
	SprintfMessage = "possible SQL string construction with fmt.Sprintf"

	callMessagePrefix = "forbidden raw SQL API usage: "
)

// CallPatterns are the forbidden database/sql call shapes, in matching
// order. Longer method names come before their prefixes (QueryRowContext
// before QueryRow before Query) so the most specific pattern reports.
var CallPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.\s*QueryContext\s*\(`),
	regexp.MustCompile(`\.\s*QueryRowContext\s*\(`),
	regexp.MustCompile(`\.\s*QueryRow\s*\(`),
	regexp.MustCompile(`\.\s*Query\s*\(`),
	regexp.MustCompile(`\.\s*ExecContext\s*\(`),
	regexp.MustCompile(`\.\s*Exec\s*\(`),
	regexp.MustCompile(`\.\s*PrepareContext\s*\(`),
	regexp.MustCompile(`\.\s*Prepare\s*\(`),
}

// ImportPattern matches a line importing database/sql, either the quoted
// path inside a grouped import block or the one-line `import "database/sql"`
// form. Aliased and blank imports are intentionally not matched.
var ImportPattern = regexp.MustCompile(`^\s*(import\s+)?"database/sql"\s*$`)

// sprintfNeedle plus any of sqlKeywords marks a line as suspicious string
// construction. Keywords are case-sensitive and require the trailing space,
// so identifiers like "SELECTED" do not trip the heuristic.
const sprintfNeedle = "fmt.Sprintf("

var sqlKeywords = []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE "}

// IsAllowed reports whether the line carries the allow marker and is
// therefore exempt from all checks.
func IsAllowed(line string) bool {
	return strings.Contains(line, AllowMarker)
}

// IsImport reports whether the line is a database/sql import.
func IsImport(line string) bool {
	return ImportPattern.MatchString(line)
}

// IsSprintfSQL reports whether the line combines fmt.Sprintf with an SQL
// keyword.
func IsSprintfSQL(line string) bool {
	if !strings.Contains(line, sprintfNeedle) {
		return false
	}
	for _, kw := range sqlKeywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// MatchCall returns the first forbidden call pattern matching the line.
// Precedence is table order, not position in the line.
func MatchCall(line string) (*regexp.Regexp, bool) {
	for _, pat := range CallPatterns {
		if pat.MatchString(line) {
			return pat, true
		}
	}
	return nil, false
}

// CallMessage builds the violation message for a matched call pattern,
// embedding the pattern source text.
func CallMessage(pat *regexp.Regexp) string {
	return callMessagePrefix + pat.String()
}
