package events

import (
	"encoding/json"

	"github.com/charlie0129/battreport/pkg/report"
)

const (
	// ReportParsed is published by the daemon after every successful parse.
	ReportParsed = "report.parsed"
)

// Event is a server-sent event of the daemon.
type Event struct {
	Name string
	Data json.RawMessage
}

// ReportParsedEvent summarizes one parsed report.
type ReportParsedEvent struct {
	Health         string        `json:"health"`
	MetricsOrigin  report.Origin `json:"metricsOrigin"`
	CapacityOrigin report.Origin `json:"capacityOrigin"`
	// Refused is set when strict mode rejected the report.
	Refused bool  `json:"refused,omitempty"`
	Ts      int64 `json:"ts"`
}

// DecodeAs unmarshals the payload of e into T. Empty payloads yield the zero
// value.
func DecodeAs[T any](e Event) (T, error) {
	var v T
	if len(e.Data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(e.Data, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
