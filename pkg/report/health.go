package report

import "fmt"

// Health returns full/design*100 clamped to [0, 100], reading both
// capacities with ParseFirstInt. It is 0 when either has no number or the
// design capacity is not positive.
func Health(full, design string) float64 {
	f, ok := ParseFirstInt(full)
	if !ok {
		return 0
	}
	d, ok := ParseFirstInt(design)
	if !ok {
		return 0
	}
	return HealthOf(f, d)
}

// HealthOf is Health for capacities that are already numbers.
func HealthOf(full, design int) float64 {
	if design <= 0 {
		return 0
	}
	pct := float64(full) / float64(design) * 100
	return max(0, min(pct, 100))
}

// FormatHealth formats a health percentage with one decimal, e.g. "37.7%".
func FormatHealth(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// ApplyHealth computes the health from the capacities in m and stores it
// under BatteryHealth.
func ApplyHealth(m MetricRecord) {
	m[BatteryHealth] = FormatHealth(Health(m[FullChargeCapacity], m[DesignCapacity]))
}
