package report

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxUsageEntries is the most usage history rows read from a report.
const MaxUsageEntries = 7

var usageHistoryLocator = headingContains("h1, h2", "Battery usage")

// minUsageColumns is the fewest cells a "Date" row needs to be taken as the
// header of a usage table. It keeps two-cell rows such as
// "Manufacture Date | 2021-03-04" out.
const minUsageColumns = 3

// ExtractUsageHistory reads up to MaxUsageEntries rows of the usage history
// table, keyed by the table's own column headers. A document without such a
// table gives an empty history.
func ExtractUsageHistory(doc *goquery.Document) UsageHistory {
	if table := usageHistoryLocator.find(doc); table != nil {
		rows := tableRows(table)
		return readUsageRows(rows, usageHeaderRow(rows))
	}
	if rows, header, ok := dateHeaderRows(doc); ok {
		return readUsageRows(rows, header)
	}
	return UsageHistory{}
}

// dateHeaderRows finds the first row that starts with "Date" and has at least
// minUsageColumns cells, the layout of older reports. It returns the rows of
// that row's table and the index of the row among them.
func dateHeaderRows(doc *goquery.Document) ([]*goquery.Selection, int, bool) {
	var match *goquery.Selection
	doc.Find("tr").EachWithBreak(func(_ int, r *goquery.Selection) bool {
		cells := r.ChildrenFiltered("td, th")
		if cells.Length() >= minUsageColumns && strings.Contains(cellText(cells.First()), "Date") {
			match = r
			return false
		}
		return true
	})
	if match == nil {
		return nil, 0, false
	}

	rows := tableRows(match.Closest("table"))
	for i, r := range rows {
		if r.IsSelection(match) {
			return rows, i, true
		}
	}
	return nil, 0, false
}

// usageHeaderRow returns the index of the first row holding <th> cells, or 0
// when there is none.
func usageHeaderRow(rows []*goquery.Selection) int {
	for i, row := range rows {
		if row.ChildrenFiltered("th").Length() > 0 {
			return i
		}
	}
	return 0
}

// readUsageRows takes column names from rows[header] and reads at most
// MaxUsageEntries rows after it.
func readUsageRows(rows []*goquery.Selection, header int) UsageHistory {
	if header >= len(rows) {
		return UsageHistory{}
	}
	columns := cellTexts(rows[header], "td, th")
	if len(columns) == 0 {
		return UsageHistory{}
	}

	h := UsageHistory{Columns: columns}
	rest := rows[header+1:]
	if len(rest) > MaxUsageEntries {
		rest = rest[:MaxUsageEntries]
	}
	for _, row := range rest {
		cells := cellTexts(row, "td")
		n := min(len(columns), len(cells))
		entry := make(UsageHistoryEntry, 0, n)
		populated := false
		for i := 0; i < n; i++ {
			entry = append(entry, Field{Name: columns[i], Value: cells[i]})
			populated = populated || cells[i] != ""
		}
		if populated {
			h.Entries = append(h.Entries, entry)
		}
	}
	return h
}
