package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MetricName is one of the headline metrics of a battery report.
type MetricName string

const (
	DesignCapacity     MetricName = "Design Capacity"
	FullChargeCapacity MetricName = "Full Charge Capacity"
	CycleCount         MetricName = "Cycle Count"
	// BatteryHealth is derived by ApplyHealth and never read from the document.
	BatteryHealth MetricName = "Battery Health"
)

// MetricNames lists every metric in display order.
var MetricNames = []MetricName{DesignCapacity, FullChargeCapacity, CycleCount, BatteryHealth}

// extractedMetrics are the metrics that can be sourced from the document.
var extractedMetrics = []MetricName{DesignCapacity, FullChargeCapacity, CycleCount}

// MetricRecord maps a metric to its display string, e.g. "56999 mWh".
type MetricRecord map[MetricName]string

// Origin tells whether a value was read from the document or made up to keep
// the result well-formed.
type Origin string

const (
	OriginObserved  Origin = "observed"
	OriginSynthetic Origin = "synthetic"
)

// Synthetic reports whether o marks placeholder data.
func (o Origin) Synthetic() bool {
	return o == OriginSynthetic
}

// Detail is a label/value row of the report that is not a known metric.
type Detail struct {
	Label string
	Value string
}

// Details keeps the document's label/value rows in document order.
// Labels are unique; a repeated label updates the earlier value.
type Details []Detail

// Get returns the value recorded for label.
func (d Details) Get(label string) (string, bool) {
	for _, det := range d {
		if det.Label == label {
			return det.Value, true
		}
	}
	return "", false
}

func (d Details) set(label, value string) Details {
	for i := range d {
		if d[i].Label == label {
			d[i].Value = value
			return d
		}
	}
	return append(d, Detail{Label: label, Value: value})
}

// MarshalJSON encodes the details as a JSON object in document order.
func (d Details) MarshalJSON() ([]byte, error) {
	pairs := make([][2]string, len(d))
	for i, det := range d {
		pairs[i] = [2]string{det.Label, det.Value}
	}
	return marshalOrdered(pairs)
}

// UnmarshalJSON decodes a JSON object written by MarshalJSON, keeping key order.
func (d *Details) UnmarshalJSON(b []byte) error {
	pairs, err := unmarshalOrdered(b)
	if err != nil {
		return err
	}
	out := make(Details, 0, len(pairs))
	for _, p := range pairs {
		out = out.set(p[0], p[1])
	}
	*d = out
	return nil
}

// Field is one cell of a usage history row, keyed by its column header.
type Field struct {
	Name  string
	Value string
}

// UsageHistoryEntry is one row of the usage history table. Field names come
// from the document's own column headers.
type UsageHistoryEntry []Field

// Get returns the value of the named column.
func (e UsageHistoryEntry) Get(name string) (string, bool) {
	for _, f := range e {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// MarshalJSON encodes the entry as a JSON object in column order.
func (e UsageHistoryEntry) MarshalJSON() ([]byte, error) {
	pairs := make([][2]string, len(e))
	for i, f := range e {
		pairs[i] = [2]string{f.Name, f.Value}
	}
	return marshalOrdered(pairs)
}

// UnmarshalJSON decodes a JSON object written by MarshalJSON, keeping key order.
func (e *UsageHistoryEntry) UnmarshalJSON(b []byte) error {
	pairs, err := unmarshalOrdered(b)
	if err != nil {
		return err
	}
	out := make(UsageHistoryEntry, len(pairs))
	for i, p := range pairs {
		out[i] = Field{Name: p[0], Value: p[1]}
	}
	*e = out
	return nil
}

// UsageHistory holds at most MaxUsageEntries rows of daily usage.
type UsageHistory struct {
	Columns []string            `json:"columns"`
	Entries []UsageHistoryEntry `json:"entries"`
}

// CapacityHistory is the capacity-history table stored as three parallel
// series, oldest period first. All three slices always have the same length.
type CapacityHistory struct {
	Periods    []string `json:"periods"`
	FullCharge []int    `json:"fullChargeMWh"`
	Design     []int    `json:"designMWh"`
	Origin     Origin   `json:"origin"`
}

// Len returns the number of periods.
func (h CapacityHistory) Len() int {
	return len(h.Periods)
}

// ParsedReport is everything extracted from one battery report. A new value
// is built on every parse; nothing in it is shared with other reports.
type ParsedReport struct {
	Metrics         MetricRecord    `json:"metrics"`
	MetricsOrigin   Origin          `json:"metricsOrigin"`
	Details         Details         `json:"details"`
	UsageHistory    UsageHistory    `json:"usageHistory"`
	CapacityHistory CapacityHistory `json:"capacityHistory"`
	// Raw is the document text, kept for display and export. It is not
	// encoded to JSON.
	Raw string `json:"-"`
}

// Synthetic reports whether any part of the report is placeholder data.
func (r *ParsedReport) Synthetic() bool {
	return r.MetricsOrigin.Synthetic() || r.CapacityHistory.Origin.Synthetic()
}

func marshalOrdered(pairs [][2]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p[0])
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p[1])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func unmarshalOrdered(b []byte) ([][2]string, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var pairs [][2]string
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", tok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode value of %q: %w", key, err)
		}
		pairs = append(pairs, [2]string{key, value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return pairs, nil
}
