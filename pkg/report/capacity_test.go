package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCapacityHistory(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		metrics MetricRecord
		want    CapacityHistory
	}{
		{
			name: "table after heading",
			html: `<h2>Battery capacity history</h2><div>explanation</div>
<table>
<tr><th>PERIOD</th><th>FULL CHARGE CAPACITY</th><th>DESIGN CAPACITY</th></tr>
<tr><td>Period 1</td><td>20360 mWh</td><td>56999 mWh</td></tr>
<tr><td>Period 2</td><td>14694 mWh</td><td>56999 mWh</td></tr>
<tr><td>Period 3</td><td>21466 mWh</td><td>56999 mWh</td></tr>
</table>`,
			want: CapacityHistory{
				Periods:    []string{"Period 1", "Period 2", "Period 3"},
				FullCharge: []int{20360, 14694, 21466},
				Design:     []int{56999, 56999, 56999},
				Origin:     OriginObserved,
			},
		},
		{
			name: "rows with a missing number are skipped",
			html: `<h2>Battery capacity history</h2>
<table>
<tr><td>PERIOD</td><td>FULL</td><td>DESIGN</td></tr>
<tr><td>week 1</td><td>-</td><td>56999 mWh</td></tr>
<tr><td>week 2</td><td>30000 mWh</td><td></td></tr>
<tr><td>week 3</td><td>29000 mWh</td><td>56999 mWh</td></tr>
<tr><td>week 4</td><td>28000 mWh</td></tr>
</table>`,
			want: CapacityHistory{
				Periods:    []string{"week 3"},
				FullCharge: []int{29000},
				Design:     []int{56999},
				Origin:     OriginObserved,
			},
		},
		{
			name: "table found by content",
			html: `<table><tr><td>NAME</td><td>x</td></tr></table>
<table>
<tr><td>PERIOD</td><td>FULL CHARGE</td><td>DESIGN</td></tr>
<tr><td>2024-01-01</td><td>41000 mWh</td><td>45000 mWh</td></tr>
</table>`,
			want: CapacityHistory{
				Periods:    []string{"2024-01-01"},
				FullCharge: []int{41000},
				Design:     []int{45000},
				Origin:     OriginObserved,
			},
		},
		{
			name: "two-column table with the right words is passed over",
			html: `<table>
<tr><td>FULL CHARGE CAPACITY</td><td>41000 mWh</td></tr>
</table>
<table>
<tr><th>CAPACITY HISTORY</th></tr>
<tr><td>Q1</td><td>40000</td><td>45000</td></tr>
</table>`,
			want: CapacityHistory{
				Periods:    []string{"Q1"},
				FullCharge: []int{40000},
				Design:     []int{45000},
				Origin:     OriginObserved,
			},
		},
		{
			name: "heading without a table does not borrow the next section's table",
			html: `<h2>Battery capacity history</h2><p>No data</p>
<h2>Battery life estimates</h2>
<table>
<tr><th>PERIOD</th><th>ACTIVE</th><th>AT DESIGN CAPACITY</th></tr>
<tr><td>2024-05-01 - 2024-05-08</td><td>1:23:45</td><td>3:05:00</td></tr>
</table>`,
			metrics: MetricRecord{DesignCapacity: "45000 mWh", FullChargeCapacity: "40000 mWh"},
			want:    syntheticCapacityHistory(MetricRecord{DesignCapacity: "45000 mWh", FullChargeCapacity: "40000 mWh"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCapacityHistory(mustDoc(t, tt.html), tt.metrics)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCapacityHistorySynthetic(t *testing.T) {
	t.Run("derived from metrics", func(t *testing.T) {
		got := ExtractCapacityHistory(mustDoc(t, `<p>nothing here</p>`), MetricRecord{
			DesignCapacity:     "56999 mWh",
			FullChargeCapacity: "40000 mWh",
		})
		assert.Equal(t, OriginSynthetic, got.Origin)
		assert.Equal(t, 10, got.Len())
		assert.Len(t, got.FullCharge, 10)
		assert.Len(t, got.Design, 10)
		assert.Equal(t, "Period 1", got.Periods[0])
		assert.Equal(t, "Period 10", got.Periods[9])
		assert.Equal(t, 40000, got.FullCharge[0])
		assert.Equal(t, 39800, got.FullCharge[1])
		assert.Equal(t, 38200, got.FullCharge[9])
		for _, d := range got.Design {
			assert.Equal(t, 56999, d)
		}
	})

	t.Run("defaults without metrics", func(t *testing.T) {
		got := ExtractCapacityHistory(mustDoc(t, ``), MetricRecord{})
		assert.Equal(t, OriginSynthetic, got.Origin)
		assert.Equal(t, 50000, got.Design[0])
		assert.Equal(t, 40000, got.FullCharge[0])
		for i := 1; i < got.Len(); i++ {
			assert.Less(t, got.FullCharge[i], got.FullCharge[i-1])
		}
	})

	t.Run("full charge falls back to 80 percent of design", func(t *testing.T) {
		got := ExtractCapacityHistory(mustDoc(t, ``), MetricRecord{DesignCapacity: "45000 mWh"})
		assert.Equal(t, 36000, got.FullCharge[0])
		assert.Equal(t, 45000, got.Design[0])
	})
}

func TestCapacityHistorySeriesStayAligned(t *testing.T) {
	inputs := []string{
		readFixture(t, "battery-report.html"),
		`<h2>Battery capacity history</h2><table><tr><th>P</th></tr><tr><td>a</td><td>1</td></tr><tr><td>b</td><td>x</td><td>2</td></tr></table>`,
		`<table><tr><td>FULL CHARGE</td></tr></table>`,
		``,
	}
	for _, html := range inputs {
		h := ExtractCapacityHistory(mustDoc(t, html), MetricRecord{})
		assert.Equal(t, len(h.Periods), len(h.FullCharge))
		assert.Equal(t, len(h.Periods), len(h.Design))
	}
}
