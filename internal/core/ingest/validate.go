// Package ingest validates ad-performance CSV exports before they are
// recorded as uploads.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"

	"adops/internal/core/domain"
)

// Column names understood by the validator.
const (
	ColDate        = "date"
	ColPlatform    = "platform"
	ColCampaign    = "campaign"
	ColSpend       = "spend"
	ColImpressions = "impressions"
	ColClicks      = "clicks"
	ColAdSet       = "ad_set"
	ColConversions = "conversions"
	ColRevenue     = "revenue"
	ColCurrency    = "currency"
)

// RequiredColumns must all be present in the header.
var RequiredColumns = []string{ColDate, ColPlatform, ColCampaign, ColSpend, ColImpressions, ColClicks}

var optionalColumns = []string{ColAdSet, ColConversions, ColRevenue, ColCurrency}

const dateLayout = "2006-01-02"

// Options bounds the work done for a single file.
type Options struct {
	MaxRows     int
	PreviewRows int
	MaxIssues   int
}

// DefaultOptions returns the limits used when none are configured.
func DefaultOptions() Options {
	return Options{MaxRows: 50000, PreviewRows: 5, MaxIssues: 200}
}

// Issue is a problem found in the file. Row 0 is the header, data rows are
// numbered from 1.
type Issue struct {
	Row      int                  `json:"row"`
	Column   string               `json:"column,omitempty"`
	Severity domain.IssueSeverity `json:"severity"`
	Message  string               `json:"message"`
}

// Report is the outcome of validating one file.
type Report struct {
	Status       domain.ValidationStatus `json:"status"`
	Columns      []string                `json:"columns"`
	RowCount     int                     `json:"row_count"`
	ErrorCount   int                     `json:"error_count"`
	WarningCount int                     `json:"warning_count"`
	Preview      []map[string]string     `json:"preview"`
	Issues       []Issue                 `json:"issues"`
}

type validator struct {
	opts      Options
	report    Report
	index     map[string]int
	truncated int
}

// ValidateCSV reads r as a CSV export and reports its validation status.
// Malformed content yields a failed report; the returned error is reserved
// for failures reading r.
func ValidateCSV(r io.Reader, opts Options) (Report, error) {
	if opts.MaxRows <= 0 {
		opts.MaxRows = DefaultOptions().MaxRows
	}
	if opts.PreviewRows < 0 {
		opts.PreviewRows = 0
	}
	if opts.MaxIssues <= 0 {
		opts.MaxIssues = DefaultOptions().MaxIssues
	}
	v := &validator{
		opts: opts,
		report: Report{
			Columns: []string{},
			Preview: []map[string]string{},
			Issues:  []Issue{},
		},
		index: make(map[string]int),
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	switch {
	case errors.Is(err, io.EOF):
		v.errorf(0, "", "file is empty")
		return v.finish(), nil
	case isParseError(err):
		v.errorf(0, "", "malformed CSV header: %v", err)
		return v.finish(), nil
	case err != nil:
		return Report{}, fmt.Errorf("read csv header: %w", err)
	}
	if !v.readHeader(header) {
		return v.finish(), nil
	}

	for {
		if v.report.RowCount >= opts.MaxRows {
			if _, err := reader.Read(); err == nil {
				v.warnf(v.report.RowCount+1, "", "rows beyond %d were not read", opts.MaxRows)
			}
			break
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row := v.report.RowCount + 1
		if isParseError(err) {
			v.errorf(row, "", "malformed CSV: %v", err)
			break
		}
		if err != nil {
			return Report{}, fmt.Errorf("read csv row %d: %w", row, err)
		}
		v.report.RowCount++
		v.checkRow(row, record)
	}

	if v.report.RowCount == 0 && v.report.ErrorCount == 0 {
		v.errorf(0, "", "file has no data rows")
	}
	return v.finish(), nil
}

func isParseError(err error) bool {
	var pe *csv.ParseError
	return errors.As(err, &pe)
}

func (v *validator) readHeader(header []string) bool {
	for i, raw := range header {
		if i == 0 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}
		name := strings.ToLower(strings.TrimSpace(raw))
		v.report.Columns = append(v.report.Columns, name)
		if name == "" {
			v.errorf(0, "", "column %d has no name", i+1)
			continue
		}
		if _, dup := v.index[name]; dup {
			v.errorf(0, name, "duplicate column %q", name)
			continue
		}
		v.index[name] = i
		if !isKnownColumn(name) {
			v.warnf(0, name, "unknown column %q will be ignored", name)
		}
	}
	ok := v.report.ErrorCount == 0
	for _, col := range RequiredColumns {
		if _, found := v.index[col]; !found {
			v.errorf(0, col, "missing required column %q", col)
			ok = false
		}
	}
	return ok
}

func isKnownColumn(name string) bool {
	for _, c := range RequiredColumns {
		if c == name {
			return true
		}
	}
	for _, c := range optionalColumns {
		if c == name {
			return true
		}
	}
	return false
}

func (v *validator) checkRow(row int, record []string) {
	if len(record) != len(v.report.Columns) {
		v.errorf(row, "", "expected %d fields, got %d", len(v.report.Columns), len(record))
		return
	}
	values := make(map[string]string, len(v.index))
	for name, i := range v.index {
		values[name] = strings.TrimSpace(record[i])
	}
	if len(v.report.Preview) < v.opts.PreviewRows {
		v.report.Preview = append(v.report.Preview, values)
	}

	if _, err := time.Parse(dateLayout, values[ColDate]); err != nil {
		v.errorf(row, ColDate, "invalid date %q, expected YYYY-MM-DD", values[ColDate])
	}
	if p := domain.Platform(strings.ToLower(values[ColPlatform])); !p.Valid() {
		v.errorf(row, ColPlatform, "unknown platform %q", values[ColPlatform])
	}
	if values[ColCampaign] == "" {
		v.errorf(row, ColCampaign, "campaign is required")
	}
	v.checkAmount(row, ColSpend, values[ColSpend], true)

	impressions, impOK := v.checkCount(row, ColImpressions, values[ColImpressions], true)
	clicks, clicksOK := v.checkCount(row, ColClicks, values[ColClicks], true)
	if impOK && clicksOK && clicks > impressions {
		v.warnf(row, ColClicks, "clicks (%d) exceed impressions (%d)", clicks, impressions)
	}

	if raw, present := values[ColConversions]; present {
		conversions, ok := v.checkCount(row, ColConversions, raw, false)
		if ok && clicksOK && raw != "" && conversions > clicks {
			v.warnf(row, ColConversions, "conversions (%d) exceed clicks (%d)", conversions, clicks)
		}
	}
	if raw, present := values[ColRevenue]; present {
		v.checkAmount(row, ColRevenue, raw, false)
	}
	if code := values[ColCurrency]; code != "" {
		if _, err := currency.ParseISO(code); err != nil {
			v.errorf(row, ColCurrency, "unknown currency %q", code)
		}
	}
}

func (v *validator) checkAmount(row int, col, raw string, required bool) {
	if raw == "" {
		if required {
			v.errorf(row, col, "%s is required", col)
		}
		return
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		v.errorf(row, col, "%s must be a number, got %q", col, raw)
		return
	}
	if amount < 0 {
		v.errorf(row, col, "%s must not be negative", col)
	}
}

func (v *validator) checkCount(row int, col, raw string, required bool) (int64, bool) {
	if raw == "" {
		if required {
			v.errorf(row, col, "%s is required", col)
		}
		return 0, false
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(raw, ",", ""), 10, 64)
	if err != nil {
		v.errorf(row, col, "%s must be a whole number, got %q", col, raw)
		return 0, false
	}
	if n < 0 {
		v.errorf(row, col, "%s must not be negative", col)
		return 0, false
	}
	return n, true
}

func (v *validator) errorf(row int, col, format string, args ...any) {
	v.report.ErrorCount++
	v.add(Issue{Row: row, Column: col, Severity: domain.SeverityError, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) warnf(row int, col, format string, args ...any) {
	v.report.WarningCount++
	v.add(Issue{Row: row, Column: col, Severity: domain.SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) add(issue Issue) {
	if len(v.report.Issues) >= v.opts.MaxIssues {
		v.truncated++
		return
	}
	v.report.Issues = append(v.report.Issues, issue)
}

func (v *validator) finish() Report {
	if v.truncated > 0 {
		v.report.Issues = append(v.report.Issues, Issue{
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("%d further issues omitted", v.truncated),
		})
	}
	switch {
	case v.report.ErrorCount > 0:
		v.report.Status = domain.ValidationFail
	case v.report.WarningCount > 0:
		v.report.Status = domain.ValidationWarn
	default:
		v.report.Status = domain.ValidationPass
	}
	return v.report
}
