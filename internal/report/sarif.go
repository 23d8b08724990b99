package report

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/solomon-platform/gorm-postgres-enforcer/internal/rules"

	apperrors "github.com/solomon-platform/gorm-postgres-enforcer/internal/pkg/errors"
)

// SARIF 2.1.0 subset, enough for GitHub code scanning and VS Code.

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool              sarifTool               `json:"tool"`
	AutomationDetails *sarifAutomationDetails `json:"automationDetails,omitempty"`
	Results           []sarifResult           `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifAutomationDetails struct {
	GUID string `json:"guid"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Message   sarifMessage    `json:"message"`
	Level     string          `json:"level"` // error, warning, note
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// WriteSARIF renders a single-run SARIF 2.1.0 log.
func WriteSARIF(w io.Writer, rep Report) error {
	results := make([]sarifResult, 0, len(rep.Violations))
	for _, v := range rep.Violations {
		start := v.Line
		if start <= 0 {
			start = 1
		}
		results = append(results, sarifResult{
			RuleID: v.RuleID,
			Level:  levelFor(v.RuleID),
			Message: sarifMessage{
				Text: v.Message,
			},
			Locations: []sarifLocation{
				{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{
							URI: toURI(v.Path),
						},
						Region: sarifRegion{
							StartLine: start,
						},
					},
				},
			},
		})
	}

	log := sarifLog{
		Version: "2.1.0",
		// RTM schema recognized by GitHub/VSCode
		Schema: "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:    rep.Tool,
						Version: rep.Version,
					},
				},
				AutomationDetails: &sarifAutomationDetails{
					GUID: rep.RunID,
				},
				Results: results,
			},
		},
	}

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return apperrors.EncodeFailed(FormatSARIF, err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return apperrors.EncodeFailed(FormatSARIF, err)
	}
	return nil
}

// levelFor maps a rule to a SARIF severity. The Sprintf rule is a
// heuristic, so it reports as a warning rather than an error.
func levelFor(ruleID string) string {
	if ruleID == rules.RuleSprintfSQL {
		return "warning"
	}
	return "error"
}

func toURI(p string) string {
	p = filepath.ToSlash(p)
	return strings.TrimPrefix(p, "./")
}
