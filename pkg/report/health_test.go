package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		full   string
		design string
		want   string
	}{
		{name: "worn battery", full: "21466 mWh", design: "56999 mWh", want: "37.7%"},
		{name: "new battery", full: "56999", design: "56999", want: "100.0%"},
		{name: "above design is clamped", full: "60000 mWh", design: "50000 mWh", want: "100.0%"},
		{name: "zero design capacity", full: "21466", design: "0", want: "0.0%"},
		{name: "unparsable design capacity", full: "21466", design: "unknown", want: "0.0%"},
		{name: "unparsable full charge capacity", full: "-", design: "56999", want: "0.0%"},
		{name: "zero full charge capacity", full: "0 mWh", design: "56999 mWh", want: "0.0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHealth(Health(tt.full, tt.design)))
		})
	}
}

func TestHealthOf(t *testing.T) {
	assert.InDelta(t, 37.66, HealthOf(21466, 56999), 0.01)
	assert.Equal(t, 0.0, HealthOf(100, 0))
	assert.Equal(t, 0.0, HealthOf(100, -5))
	assert.Equal(t, 0.0, HealthOf(-100, 500))
	assert.Equal(t, 100.0, HealthOf(501, 500))
}

func TestApplyHealth(t *testing.T) {
	m := MetricRecord{
		DesignCapacity:     "56999 mWh",
		FullChargeCapacity: "21466 mWh",
	}
	ApplyHealth(m)
	assert.Equal(t, "37.7%", m[BatteryHealth])

	empty := MetricRecord{}
	ApplyHealth(empty)
	assert.Equal(t, "0.0%", empty[BatteryHealth])
}
