// Package format renders raw backend values as display strings. Absent values render as
// Placeholder; numeric rounding is half away from zero on the exact binary value, which is
// how the mobile client has always displayed amounts.
package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Placeholder is shown for absent values.
const Placeholder = "-"

// Value returns s, or Placeholder when s is empty.
func Value(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// Number renders v in its shortest decimal form, or Placeholder when nil.
func Number(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return JSNumber(*v)
}

// Int renders v, or Placeholder when nil.
func Int(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}

// Percent renders v followed by "%", or Placeholder when nil. Zero is a value.
func Percent(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return JSNumber(*v) + "%"
}

// Date passes a date string through, or Placeholder when empty.
func Date(s string) string {
	return Value(s)
}

// JSNumber renders v in the shortest fixed-point form that round-trips.
func JSNumber(v float64) string {
	if s, ok := special(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Fixed renders v with exactly places fractional digits.
func Fixed(v float64, places int) string {
	if s, ok := special(v); ok {
		return s
	}
	if places < 0 {
		places = 0
	}
	out := roundMagnitude(math.Abs(v), places)
	if v < 0 {
		return "-" + out
	}
	return out
}

// FixedPtr is Fixed for an optional value; nil renders as "".
func FixedPtr(v *float64, places int) string {
	if v == nil {
		return ""
	}
	return Fixed(*v, places)
}

// Amount renders v with en-US thousands grouping and exactly two decimals, or
// Placeholder when nil. Amount(1234.5) is "1,234.50".
func Amount(v *float64) string {
	if v == nil {
		return Placeholder
	}
	fixed := Fixed(*v, 2)
	if _, ok := special(*v); ok {
		return fixed
	}

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + group(intPart) + "." + frac
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func special(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

// roundMagnitude rounds a non-negative v to places digits, ties away from zero.
// A float64 has at most 1074 fractional digits, so 1100 renders it exactly.
func roundMagnitude(v float64, places int) string {
	exact := new(big.Float).SetFloat64(v).Text('f', 1100)
	intPart, frac, _ := strings.Cut(exact, ".")

	digits := intPart + frac[:places]
	if frac[places] >= '5' {
		digits = increment(digits)
	}
	if places == 0 {
		return digits
	}
	split := len(digits) - places
	return digits[:split] + "." + digits[split:]
}

func increment(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
}

// DateTime renders s as "MM-DD HH:mm" in the local zone. Empty input renders as
// Placeholder; input that is not a recognisable date is returned unchanged.
func DateTime(s string) string {
	return DateTimeIn(s, time.Local)
}

// DateTimeIn is DateTime in the given zone. Timestamps without an offset are read as
// wall-clock time in loc; bare ISO dates (2006-01-02) are read as UTC midnight.
func DateTimeIn(s string, loc *time.Location) string {
	if s == "" {
		return Placeholder
	}
	t, ok := parseDateTime(strings.TrimSpace(s), loc)
	if !ok {
		return s
	}
	return t.In(loc).Format("01-02 15:04")
}

func parseDateTime(s string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsVCOrFreightContract reports contract type 0 (freight canvassing) or 3 (VC).
func IsVCOrFreightContract(contractType *int) bool {
	return contractType != nil && (*contractType == 0 || *contractType == 3)
}

// IsTCOrTCTContract reports contract type 1 (TC) or 2 (TCT).
func IsTCOrTCTContract(contractType *int) bool {
	return contractType != nil && (*contractType == 1 || *contractType == 2)
}

// YesNo renders 1 as 是, 0 as 否 and anything else as Placeholder.
func YesNo(flag *int) string {
	if flag == nil {
		return Placeholder
	}
	switch *flag {
	case 1:
		return "是"
	case 0:
		return "否"
	}
	return Placeholder
}

// First returns the first non-empty value.
func First(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
