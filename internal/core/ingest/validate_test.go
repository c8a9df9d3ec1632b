package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adops/internal/core/domain"
)

const header = "date,platform,campaign,spend,impressions,clicks\n"

func validate(t *testing.T, body string, opts Options) Report {
	t.Helper()
	report, err := ValidateCSV(strings.NewReader(body), opts)
	require.NoError(t, err)
	return report
}

func TestValidateCSVPass(t *testing.T) {
	body := header +
		"2026-01-02,meta,Spring Sale,120.50,1000,40\n" +
		"2026-01-03,Google,Spring Sale,\"1,020.00\",5000,120\n"

	report := validate(t, body, DefaultOptions())
	assert.Equal(t, domain.ValidationPass, report.Status)
	assert.Equal(t, 2, report.RowCount)
	assert.Empty(t, report.Issues)
	require.Len(t, report.Preview, 2)
	assert.Equal(t, "Spring Sale", report.Preview[0]["campaign"])
	assert.Equal(t, []string{"date", "platform", "campaign", "spend", "impressions", "clicks"}, report.Columns)
}

func TestValidateCSVHeaderNormalization(t *testing.T) {
	body := "\ufeff Date , PLATFORM,Campaign,Spend,Impressions,Clicks\n2026-01-02,tiktok,A,1,10,1\n"
	report := validate(t, body, DefaultOptions())
	assert.Equal(t, domain.ValidationPass, report.Status)
	assert.Equal(t, "date", report.Columns[0])
}

func TestValidateCSVEmpty(t *testing.T) {
	report := validate(t, "", DefaultOptions())
	assert.Equal(t, domain.ValidationFail, report.Status)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "file is empty", report.Issues[0].Message)
}

func TestValidateCSVHeaderOnly(t *testing.T) {
	report := validate(t, header, DefaultOptions())
	assert.Equal(t, domain.ValidationFail, report.Status)
	assert.Equal(t, "file has no data rows", report.Issues[0].Message)
}

func TestValidateCSVMissingColumn(t *testing.T) {
	report := validate(t, "date,platform,campaign,spend,impressions\n2026-01-02,meta,A,1,10\n", DefaultOptions())
	assert.Equal(t, domain.ValidationFail, report.Status)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "clicks", report.Issues[0].Column)
	assert.Equal(t, 0, report.Issues[0].Row)
	assert.Zero(t, report.RowCount)
}

func TestValidateCSVRowErrors(t *testing.T) {
	body := header +
		"02/01/2026,snapchat,,abc,-5,1.5\n"
	report := validate(t, body, DefaultOptions())
	assert.Equal(t, domain.ValidationFail, report.Status)
	assert.Equal(t, 6, report.ErrorCount)

	columns := map[string]bool{}
	for _, issue := range report.Issues {
		assert.Equal(t, 1, issue.Row)
		assert.Equal(t, domain.SeverityError, issue.Severity)
		columns[issue.Column] = true
	}
	for _, col := range []string{"date", "platform", "campaign", "spend", "impressions", "clicks"} {
		assert.True(t, columns[col], "expected an issue for %s", col)
	}
}

func TestValidateCSVWarnings(t *testing.T) {
	body := "date,platform,campaign,spend,impressions,clicks,conversions,notes\n" +
		"2026-01-02,linkedin,B2B,10,5,10,20,hello\n"
	report := validate(t, body, DefaultOptions())
	assert.Equal(t, domain.ValidationWarn, report.Status)
	assert.Equal(t, 3, report.WarningCount)
	assert.Zero(t, report.ErrorCount)
}

func TestValidateCSVFieldCount(t *testing.T) {
	report := validate(t, header+"2026-01-02,meta,A,1\n", DefaultOptions())
	assert.Equal(t, domain.ValidationFail, report.Status)
	assert.Contains(t, report.Issues[0].Message, "expected 6 fields, got 4")
}

func TestValidateCSVCurrency(t *testing.T) {
	body := "date,platform,campaign,spend,impressions,clicks,currency\n" +
		"2026-01-02,meta,A,1,10,1,EUR\n" +
		"2026-01-02,meta,A,1,10,1,ABC\n"
	report := validate(t, body, DefaultOptions())
	assert.Equal(t, domain.ValidationFail, report.Status)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, 2, report.Issues[0].Row)
}

func TestValidateCSVMaxRows(t *testing.T) {
	body := header + strings.Repeat("2026-01-02,meta,A,1,10,1\n", 5)
	report := validate(t, body, Options{MaxRows: 3, PreviewRows: 1, MaxIssues: 10})
	assert.Equal(t, domain.ValidationWarn, report.Status)
	assert.Equal(t, 3, report.RowCount)
	assert.Len(t, report.Preview, 1)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0].Message, "rows beyond 3")
}

func TestValidateCSVIssueCap(t *testing.T) {
	body := header + strings.Repeat("bad,meta,A,1,10,1\n", 10)
	report := validate(t, body, Options{MaxRows: 100, PreviewRows: 0, MaxIssues: 4})
	assert.Equal(t, 10, report.ErrorCount)
	require.Len(t, report.Issues, 5)
	assert.Equal(t, "6 further issues omitted", report.Issues[4].Message)
	assert.Empty(t, report.Preview)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestValidateCSVReadError(t *testing.T) {
	_, err := ValidateCSV(failingReader{}, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}
