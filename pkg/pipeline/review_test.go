package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CollideNV/hadron/pkg/models"
)

func TestSortFindingsBySeverityNotAlphabet(t *testing.T) {
	findings := []models.Finding{
		{Severity: models.SeverityInfo, Message: "style nit"},
		{Severity: models.SeverityMajor, Message: "missing auth check"},
		{Severity: "unknown", Message: "unclassified"},
		{Severity: models.SeverityMinor, Message: "naming"},
		{Severity: models.SeverityCritical, Message: "sql injection"},
	}

	sortFindings(findings)

	var order []string
	for _, f := range findings {
		order = append(order, f.Severity)
	}
	// Alphabetical ordering would put "info" ahead of "major"; severity
	// ordering must not.
	assert.Equal(t, []string{
		models.SeverityCritical,
		models.SeverityMajor,
		models.SeverityMinor,
		models.SeverityInfo,
		"unknown",
	}, order)
}

func TestSortFindingsIsStableWithinSeverity(t *testing.T) {
	findings := []models.Finding{
		{Severity: models.SeverityMajor, Message: "first"},
		{Severity: models.SeverityMajor, Message: "second"},
		{Severity: models.SeverityCritical, Message: "worst"},
	}

	sortFindings(findings)

	assert.Equal(t, "worst", findings[0].Message)
	assert.Equal(t, "first", findings[1].Message)
	assert.Equal(t, "second", findings[2].Message)
}
