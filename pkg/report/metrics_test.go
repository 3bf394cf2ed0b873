package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const canonicalTable = `<table><tr><td>Design Capacity</td><td>56999 mWh</td></tr>
<tr><td>Full Charge Capacity</td><td>21466 mWh</td></tr>
<tr><td>Cycle Count</td><td>300</td></tr></table>`

func TestExtractMetrics(t *testing.T) {
	tests := []struct {
		name       string
		html       string
		want       MetricRecord
		wantOrigin Origin
	}{
		{
			name: "canonical labels",
			html: canonicalTable,
			want: MetricRecord{
				DesignCapacity:     "56999 mWh",
				FullChargeCapacity: "21466 mWh",
				CycleCount:         "300",
			},
			wantOrigin: OriginObserved,
		},
		{
			name: "upper-case labels are sniffed by content",
			html: `<table>
<tr><td><span class="label">DESIGN CAPACITY</span></td><td>45000 mWh</td></tr>
<tr><td><span class="label">FULL CHARGE CAPACITY</span></td><td>40000 MWH</td></tr>
<tr><td><span class="label">CYCLE COUNT</span></td><td>12</td></tr>
<tr><td><span class="label">CHEMISTRY</span></td><td>LiP</td></tr></table>`,
			want: MetricRecord{
				DesignCapacity:     "45000 mWh",
				FullChargeCapacity: "40000 MWH",
				CycleCount:         "12",
			},
			wantOrigin: OriginObserved,
		},
		{
			name: "cycle label without a number is ignored",
			html: `<table>
<tr><td>Design energy</td><td>45000 mWh</td></tr>
<tr><td>Cycle count</td><td>-</td></tr></table>`,
			want: MetricRecord{
				DesignCapacity: "45000 mWh",
			},
			wantOrigin: OriginObserved,
		},
		{
			name: "exact labels win over sniffing",
			html: `<table>
<tr><td>Cycle Count</td><td>7</td></tr>
<tr><td>DESIGN CAPACITY</td><td>45000 mWh</td></tr></table>`,
			want: MetricRecord{
				CycleCount: "7",
			},
			wantOrigin: OriginObserved,
		},
		{
			name: "first row for a metric wins",
			html: `<table>
<tr><td>Design Capacity</td><td>1000 mWh</td></tr>
<tr><td>Design Capacity (battery 2)</td><td>2000 mWh</td></tr></table>`,
			want: MetricRecord{
				DesignCapacity: "1000 mWh",
			},
			wantOrigin: OriginObserved,
		},
		{
			name: "no two-column rows",
			html: `<table><tr><td>a</td><td>b</td><td>c</td></tr></table><p>Design Capacity 5 mWh</p>`,
			want: MetricRecord{
				DesignCapacity:     "50000 mWh",
				FullChargeCapacity: "40000 mWh",
				CycleCount:         "0",
			},
			wantOrigin: OriginSynthetic,
		},
		{
			name: "two-column rows without metrics",
			html: `<table><tr><td>NAME</td><td>DELL</td></tr></table>`,
			want: MetricRecord{
				DesignCapacity:     "50000 mWh",
				FullChargeCapacity: "40000 mWh",
				CycleCount:         "0",
			},
			wantOrigin: OriginSynthetic,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, origin := ExtractMetrics(mustDoc(t, tt.html))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOrigin, origin)
		})
	}
}

func TestMetricsStrategiesInIsolation(t *testing.T) {
	rows := []labelRow{
		{label: "DESIGN CAPACITY", value: "45000 mWh"},
		{label: "Cycle Count", value: "3"},
	}

	m, ok := exactLabelStrategy(rows)
	assert.True(t, ok)
	assert.Equal(t, MetricRecord{CycleCount: "3"}, m)

	m, ok = contentSniffStrategy(rows)
	assert.True(t, ok)
	assert.Equal(t, MetricRecord{DesignCapacity: "45000 mWh", CycleCount: "3"}, m)

	_, ok = exactLabelStrategy(nil)
	assert.False(t, ok)
	_, ok = contentSniffStrategy(nil)
	assert.False(t, ok)

	m, ok = syntheticStrategy(nil)
	assert.True(t, ok)
	assert.Len(t, m, 3)
}
