package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solomon-platform/gorm-postgres-enforcer/internal/model"
	"github.com/solomon-platform/gorm-postgres-enforcer/internal/rules"
)

func TestWriteSARIF_Envelope(t *testing.T) {
	var buf bytes.Buffer
	rep := sampleReport(
		model.Violation{Path: "internal/db/conn.go", Line: 5, RuleID: rules.RuleForbiddenImport, Message: `forbidden import "database/sql"`},
	)

	require.NoError(t, WriteSARIF(&buf, rep))

	var got sarifLog
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "2.1.0", got.Version)
	require.Equal(t, "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json", got.Schema)
	require.Len(t, got.Runs, 1)

	run := got.Runs[0]
	require.Equal(t, "gorm-postgres-enforcer", run.Tool.Driver.Name)
	require.Equal(t, "0.1.0", run.Tool.Driver.Version)
	require.NotNil(t, run.AutomationDetails)
	require.Equal(t, rep.RunID, run.AutomationDetails.GUID)

	require.Len(t, run.Results, 1)
	res := run.Results[0]
	require.Equal(t, rules.RuleForbiddenImport, res.RuleID)
	require.Equal(t, "error", res.Level)
	require.Len(t, res.Locations, 1)
	require.Equal(t, "internal/db/conn.go", res.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	require.Equal(t, 5, res.Locations[0].PhysicalLocation.Region.StartLine)
}

func TestWriteSARIF_LevelMapping(t *testing.T) {
	tests := []struct {
		ruleID string
		want   string
	}{
		{rules.RuleRawSQLCall, "error"},
		{rules.RuleForbiddenImport, "error"},
		{rules.RuleSprintfSQL, "warning"},
	}

	for _, tt := range tests {
		t.Run(tt.ruleID, func(t *testing.T) {
			require.Equal(t, tt.want, levelFor(tt.ruleID))
		})
	}
}

func TestWriteSARIF_EmptyResultsIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, sampleReport()))
	require.Contains(t, buf.String(), `"results": []`)
}
