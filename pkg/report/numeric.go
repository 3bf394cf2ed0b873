package report

import (
	"regexp"
	"strconv"
)

var digitRunRegex = regexp.MustCompile(`[0-9]+`)

// ParseFirstInt returns the first run of decimal digits in s as an int.
// Units and other text around the digits are ignored, so "21466 mWh" gives
// 21466. Thousands separators are not understood: "56,999" gives 56.
// ok is false when s holds no digits or the run does not fit in an int.
func ParseFirstInt(s string) (n int, ok bool) {
	run := digitRunRegex.FindString(s)
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, false
	}
	return n, true
}

func hasDigits(s string) bool {
	return digitRunRegex.MatchString(s)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func formatMWh(n int) string {
	return strconv.Itoa(n) + " mWh"
}
