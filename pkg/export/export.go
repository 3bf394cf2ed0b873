// Package export writes a parsed battery report in flat text formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/charlie0129/battreport/pkg/report"
)

// CapacityHistoryHeader is the header row of the capacity history block.
var CapacityHistoryHeader = []string{"Period", "Full Charge Capacity (mWh)", "Design Capacity (mWh)"}

// WriteCSV writes r as four comma-separated blocks separated by an empty
// line: metrics, details, usage history and capacity history. The metrics
// block also records whether the metrics and the capacity history were
// observed or synthetic.
func WriteCSV(w io.Writer, r *report.ParsedReport) error {
	cw := csv.NewWriter(w)

	records := [][]string{{"Metric", "Value"}}
	for _, name := range report.MetricNames {
		if v, ok := r.Metrics[name]; ok {
			records = append(records, []string{string(name), v})
		}
	}
	records = append(records,
		[]string{"Metrics Source", string(r.MetricsOrigin)},
		[]string{"Capacity History Source", string(r.CapacityHistory.Origin)},
		nil,
		[]string{"Detail", "Value"},
	)

	for _, d := range r.Details {
		records = append(records, []string{d.Label, d.Value})
	}
	records = append(records, nil)

	if cols := r.UsageHistory.Columns; len(cols) > 0 {
		records = append(records, cols)
		for _, e := range r.UsageHistory.Entries {
			row := make([]string, len(cols))
			for i, col := range cols {
				row[i], _ = e.Get(col)
			}
			records = append(records, row)
		}
		records = append(records, nil)
	}

	records = append(records, CapacityHistoryHeader)
	h := r.CapacityHistory
	for i := range h.Periods {
		records = append(records, []string{h.Periods[i], strconv.Itoa(h.FullCharge[i]), strconv.Itoa(h.Design[i])})
	}

	if err := cw.WriteAll(records); err != nil {
		return pkgerrors.Wrap(err, "failed to write CSV")
	}
	return nil
}

// WriteJSON writes r as indented JSON. The raw document is not included.
func WriteJSON(w io.Writer, r *report.ParsedReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return pkgerrors.Wrap(err, "failed to encode report")
	}
	return nil
}
