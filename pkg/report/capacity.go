package report

import (
	"fmt"
	"math"

	"github.com/PuerkitoBio/goquery"
)

const (
	// syntheticPeriods is the length of the placeholder capacity history.
	syntheticPeriods = 10
	// syntheticDecline is how much the placeholder full charge capacity
	// drops per period, as a fraction of its starting value.
	syntheticDecline = 0.005
)

var capacityHistoryLocator = headingContains("h1, h2, h3", "Battery capacity history")

// ExtractCapacityHistory reads the capacity history table. When the document
// has none, a declining series derived from metrics is returned with
// OriginSynthetic.
func ExtractCapacityHistory(doc *goquery.Document, metrics MetricRecord) CapacityHistory {
	for _, table := range capacityHistoryTables(doc) {
		if h := readCapacityTable(table); h.Len() > 0 {
			return h
		}
	}
	return syntheticCapacityHistory(metrics)
}

// capacityHistoryTables lists candidate tables, best first.
func capacityHistoryTables(doc *goquery.Document) []*goquery.Selection {
	var tables []*goquery.Selection
	if t := capacityHistoryLocator.find(doc); t != nil {
		tables = append(tables, t)
	}
	return append(tables, tablesContaining(doc, "CAPACITY HISTORY", "FULL CHARGE")...)
}

// readCapacityTable reads period, full charge and design capacity from the
// first three cells of every row after the header. Rows where either
// capacity has no number are skipped so that the series stay aligned.
func readCapacityTable(table *goquery.Selection) CapacityHistory {
	h := CapacityHistory{Origin: OriginObserved}
	rows := tableRows(table)
	if len(rows) == 0 {
		return h
	}
	for _, row := range rows[1:] {
		cells := cellTexts(row, "td, th")
		if len(cells) < 3 {
			continue
		}
		full, ok := ParseFirstInt(cells[1])
		if !ok {
			continue
		}
		design, ok := ParseFirstInt(cells[2])
		if !ok {
			continue
		}
		h.Periods = append(h.Periods, cells[0])
		h.FullCharge = append(h.FullCharge, full)
		h.Design = append(h.Design, design)
	}
	return h
}

func syntheticCapacityHistory(metrics MetricRecord) CapacityHistory {
	design, ok := ParseFirstInt(metrics[DesignCapacity])
	if !ok || design <= 0 {
		design = syntheticDesignCapacity
	}
	start, ok := ParseFirstInt(metrics[FullChargeCapacity])
	if !ok {
		start = design * 8 / 10
	}

	h := CapacityHistory{
		Periods:    make([]string, syntheticPeriods),
		FullCharge: make([]int, syntheticPeriods),
		Design:     make([]int, syntheticPeriods),
		Origin:     OriginSynthetic,
	}
	for i := 0; i < syntheticPeriods; i++ {
		h.Periods[i] = fmt.Sprintf("Period %d", i+1)
		h.FullCharge[i] = int(math.Round(float64(start) * (1 - syntheticDecline*float64(i))))
		h.Design[i] = design
	}
	return h
}
