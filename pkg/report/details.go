package report

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// dateLabelRegex matches labels that start with a full date, e.g.
	// "2024-05-01", "5/1/2024" or "2024-05-01 - 2024-05-08". Such rows belong
	// to history tables, not to the details. Version-like labels such as
	// "Firmware 1.2" do not match.
	dateLabelRegex = regexp.MustCompile(`^[0-9]{1,4}[-/.][0-9]{1,2}[-/.][0-9]{1,4}\b`)
	// timeOnlyRegex matches labels that are a bare clock time.
	timeOnlyRegex = regexp.MustCompile(`^[0-9]{1,2}:[0-9]{2}(:[0-9]{2})?( ?[AaPp][Mm])?$`)
)

// ExtractDetails returns every two-cell row that was not read as a metric, in
// document order, with separator, date and time-only rows dropped.
func ExtractDetails(doc *goquery.Document) Details {
	rows := labelRows(doc)
	_, s := extractMetrics(rows)
	return extractDetails(rows, s)
}

// extractDetails keeps the rows that the winning metrics strategy s did not
// claim.
func extractDetails(rows []labelRow, s metricsStrategy) Details {
	var d Details
	for _, r := range rows {
		if s.claimed(r) || isNoiseLabel(r.label) {
			continue
		}
		d = d.set(r.label, r.value)
	}
	return d
}

func isNoiseLabel(label string) bool {
	if label == "" {
		return true
	}
	if dateLabelRegex.MatchString(label) || timeOnlyRegex.MatchString(label) {
		return true
	}
	// Rules like "-----" or "|".
	return strings.Trim(label, "-_=|:.*~ ") == ""
}
