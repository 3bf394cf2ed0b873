package report

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// capacityUnit marks a cell value as an energy capacity.
const capacityUnit = "mwh"

// Placeholder metrics used when the document yields nothing.
const (
	syntheticDesignCapacity = 50000
	syntheticCycleCount     = 0
)

// metricsStrategy extracts whatever metrics it can from the two-cell rows of
// a document. ok is false when it found none.
type metricsStrategy struct {
	name   string
	origin Origin
	apply  func(rows []labelRow) (m MetricRecord, ok bool)
	// claims reports whether the strategy reads r as a metric. Claimed rows
	// are kept out of the details. Nil when the strategy reads no rows.
	claims func(r labelRow) bool
}

// metricsStrategies are tried in order; the first one that finds anything
// wins and later ones are not consulted.
var metricsStrategies = []metricsStrategy{
	{name: "exact-label", origin: OriginObserved, apply: exactLabelStrategy, claims: func(r labelRow) bool {
		_, ok := exactLabel(r.label)
		return ok
	}},
	{name: "content-sniff", origin: OriginObserved, apply: contentSniffStrategy, claims: func(r labelRow) bool {
		_, ok := sniffLabel(r.label, r.value)
		return ok
	}},
	{name: "synthetic", origin: OriginSynthetic, apply: syntheticStrategy},
}

// ExtractMetrics finds design capacity, full charge capacity and cycle count.
// The returned origin is OriginSynthetic when the document held none of them
// and placeholders were returned instead.
func ExtractMetrics(doc *goquery.Document) (MetricRecord, Origin) {
	m, s := extractMetrics(labelRows(doc))
	return m, s.origin
}

// extractMetrics returns the record of the first strategy that finds
// anything, together with that strategy.
func extractMetrics(rows []labelRow) (MetricRecord, metricsStrategy) {
	for _, s := range metricsStrategies {
		if m, ok := s.apply(rows); ok {
			return m, s
		}
	}
	// syntheticStrategy always succeeds.
	panic("no metrics strategy succeeded")
}

// exactLabelStrategy matches rows whose label contains a canonical metric
// name verbatim, e.g. "Design Capacity".
func exactLabelStrategy(rows []labelRow) (MetricRecord, bool) {
	m := MetricRecord{}
	for _, r := range rows {
		if name, ok := exactLabel(r.label); ok {
			if _, seen := m[name]; !seen {
				m[name] = r.value
			}
		}
	}
	return m, len(m) > 0
}

func exactLabel(label string) (MetricName, bool) {
	for _, name := range extractedMetrics {
		if strings.Contains(label, string(name)) {
			return name, true
		}
	}
	return "", false
}

// contentSniffStrategy classifies rows by their content: a value carrying a
// capacity unit is a capacity, told apart by "design" or "full" in the label,
// and a "cycle" label with a number is the cycle count. This catches the
// upper-case and reworded labels of other report versions.
func contentSniffStrategy(rows []labelRow) (MetricRecord, bool) {
	m := MetricRecord{}
	for _, r := range rows {
		if name, ok := sniffLabel(r.label, r.value); ok {
			if _, seen := m[name]; !seen {
				m[name] = r.value
			}
		}
	}
	return m, len(m) > 0
}

func sniffLabel(label, value string) (MetricName, bool) {
	label = strings.ToLower(label)
	if strings.Contains(strings.ToLower(value), capacityUnit) {
		switch {
		case strings.Contains(label, "design"):
			return DesignCapacity, true
		case strings.Contains(label, "full"):
			return FullChargeCapacity, true
		}
	}
	if strings.Contains(label, "cycle") && hasDigits(value) {
		return CycleCount, true
	}
	return "", false
}

// syntheticStrategy returns a fixed placeholder set: a design capacity, a
// full charge capacity at 80% of it and a nominal cycle count.
func syntheticStrategy([]labelRow) (MetricRecord, bool) {
	return MetricRecord{
		DesignCapacity:     formatMWh(syntheticDesignCapacity),
		FullChargeCapacity: formatMWh(syntheticDesignCapacity * 8 / 10),
		CycleCount:         formatInt(syntheticCycleCount),
	}, true
}

// claimed reports whether the winning strategy s read r as a metric.
func (s metricsStrategy) claimed(r labelRow) bool {
	return s.claims != nil && s.claims(r)
}
