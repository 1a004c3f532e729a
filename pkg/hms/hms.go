package hms

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// MaxInputHours caps the hour field while editing.
const MaxInputHours = 999

// maxField bounds a single parsed field.
const maxField = 1<<31 - 1

// MaxSeconds is the largest total that still fits in a time.Duration.
const MaxSeconds = int64(math.MaxInt64 / int64(time.Second))

// Triple is a canonical (hours, minutes, seconds) value.
// After Normalize, Minutes and Seconds are in [0, 60).
type Triple struct {
	Hours   int
	Minutes int
	Seconds int
}

// Normalize coerces the raw fields and carries overflow into larger units.
func Normalize(h, m, s string) Triple {
	total := int64(ParseField(h))*3600 + int64(ParseField(m))*60 + int64(ParseField(s))
	if total > MaxSeconds {
		total = MaxSeconds
	}
	return fromSeconds(total)
}

// FromDuration floors d to whole seconds and decomposes it.
// Negative durations yield the zero Triple.
func FromDuration(d time.Duration) Triple {
	if d <= 0 {
		return Triple{}
	}
	return fromSeconds(int64(d / time.Second))
}

func fromSeconds(total int64) Triple {
	return Triple{
		Hours:   int(total / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}

// TotalSeconds returns h*3600 + m*60 + s.
func (t Triple) TotalSeconds() int64 {
	return int64(t.Hours)*3600 + int64(t.Minutes)*60 + int64(t.Seconds)
}

// Duration returns the Triple as a duration.
func (t Triple) Duration() time.Duration {
	return time.Duration(t.TotalSeconds()) * time.Second
}

// IsZero reports whether the Triple represents no time at all.
func (t Triple) IsZero() bool {
	return t.TotalSeconds() == 0
}

// Fields renders the components as unpadded decimal strings, the form
// written back into input fields.
func (t Triple) Fields() (h, m, s string) {
	return strconv.Itoa(t.Hours), strconv.Itoa(t.Minutes), strconv.Itoa(t.Seconds)
}

// String returns "1h30m0s" style output.
func (t Triple) String() string {
	return strconv.Itoa(t.Hours) + "h" + strconv.Itoa(t.Minutes) + "m" + strconv.Itoa(t.Seconds) + "s"
}

// ParseField strips non-digit characters and parses the rest.
// Empty input, input without digits and values that overflow return 0.
func ParseField(s string) int {
	digits := Digits(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n > maxField {
		return 0
	}
	return int(n)
}

// Digits returns s with every non-ASCII-digit rune removed.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return -1
		}
		return r
	}, s)
}

// CapHours clamps an hour value to [0, MaxInputHours].
func CapHours(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxInputHours {
		return MaxInputHours
	}
	return n
}
