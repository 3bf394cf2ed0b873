package report

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// sectionLocator finds the first table that follows a heading whose text
// satisfies match. Both history extractors use it.
type sectionLocator struct {
	// headings is a selector of the heading levels to consider, e.g. "h1, h2".
	headings string
	match    func(heading string) bool
}

// headingContains matches headings containing substr.
func headingContains(headings, substr string) sectionLocator {
	return sectionLocator{
		headings: headings,
		match: func(heading string) bool {
			return strings.Contains(heading, substr)
		},
	}
}

// find returns the table, or nil when there is none. The table must come
// before the next heading, so a section without a table does not borrow the
// table of the section after it.
func (l sectionLocator) find(doc *goquery.Document) *goquery.Selection {
	// Find returns matches in document order, so a table seen after a
	// matching heading is the one that follows it.
	var (
		found   *goquery.Selection
		pending bool
	)
	doc.Find(l.headings + ", table").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) == "table" {
			if pending {
				found = s
				return false
			}
			return true
		}
		pending = l.match(cellText(s))
		return true
	})
	return found
}

// tablesContaining returns every table whose flattened text contains any of
// substrs, in document order.
func tablesContaining(doc *goquery.Document, substrs ...string) []*goquery.Selection {
	var tables []*goquery.Selection
	doc.Find("table").Each(func(_ int, t *goquery.Selection) {
		text := t.Text()
		for _, substr := range substrs {
			if strings.Contains(text, substr) {
				tables = append(tables, t)
				return
			}
		}
	})
	return tables
}

// tableRows returns the rows that belong to table itself, skipping the rows
// of any table nested inside it.
func tableRows(table *goquery.Selection) []*goquery.Selection {
	var rows []*goquery.Selection
	table.Find("tr").Each(func(_ int, r *goquery.Selection) {
		if r.Closest("table").IsSelection(table) {
			rows = append(rows, r)
		}
	})
	return rows
}

// cellText returns the text of s with runs of whitespace collapsed to a
// single space and the ends trimmed.
func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// cellTexts returns the text of each direct child of row matching selector.
func cellTexts(row *goquery.Selection, selector string) []string {
	cells := row.ChildrenFiltered(selector)
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, c *goquery.Selection) {
		texts = append(texts, cellText(c))
	})
	return texts
}

// labelRow is a table row made of exactly two data cells.
type labelRow struct {
	label string
	value string
}

// labelRows returns every two-cell row of the document in document order.
func labelRows(doc *goquery.Document) []labelRow {
	var rows []labelRow
	doc.Find("tr").Each(func(_ int, r *goquery.Selection) {
		cells := cellTexts(r, "td")
		if len(cells) == 2 {
			rows = append(rows, labelRow{label: cells[0], value: cells[1]})
		}
	})
	return rows
}
