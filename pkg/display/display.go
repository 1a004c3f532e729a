// Package display renders tracked durations as fixed-width clock text.
package display

import (
	"fmt"
	"time"
)

// Separator joins the rendered fields.
const Separator = " : "

// Rendered zero values.
const (
	Zero       = "00 : 00 : 00"
	ZeroCentis = "00 : 00 : 00 : 00"
)

// Format renders d as "HH : MM : SS", flooring to whole seconds.
// Negative durations render as Zero.
func Format(d time.Duration) string {
	h, m, s, _ := split(d)
	return pad(h) + Separator + pad(m) + Separator + pad(s)
}

// FormatCentis renders d as "HH : MM : SS : CC", flooring to 10ms buckets.
func FormatCentis(d time.Duration) string {
	h, m, s, cs := split(d)
	return pad(h) + Separator + pad(m) + Separator + pad(s) + Separator + pad(cs)
}

func split(d time.Duration) (h, m, s, cs int64) {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	total := ms / 1000
	return total / 3600, total % 3600 / 60, total % 60, ms % 1000 / 10
}

// pad renders n with at least two digits. Hours beyond 99 keep all digits.
func pad(n int64) string {
	return fmt.Sprintf("%02d", n)
}
