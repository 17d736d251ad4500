package records

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Scalar is a single JSON scalar (string, number, bool or null) kept as the
// literal text the server sent.
type Scalar struct {
	raw []byte
}

// S builds a Scalar from a Go value. Intended for fixtures and tests.
func S(v any) Scalar {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("records: %v", err))
	}
	return Scalar{raw: b}
}

func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("empty scalar")
	}
	switch b[0] {
	case '{', '[':
		return fmt.Errorf("expected scalar, got %q", b[:1])
	}
	s.raw = append([]byte(nil), b...)
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		return []byte("null"), nil
	}
	return s.raw, nil
}

// String returns the display text: strings unquoted, booleans as sent,
// null as "", numbers in shortest form (25.0 shows as 25, 1e3 as 1000).
func (s Scalar) String() string {
	if len(s.raw) == 0 || string(s.raw) == "null" {
		return ""
	}
	switch s.raw[0] {
	case '"':
		var str string
		if err := json.Unmarshal(s.raw, &str); err != nil {
			return string(s.raw)
		}
		return str
	case 't', 'f':
		return string(s.raw)
	}
	f, err := strconv.ParseFloat(string(s.raw), 64)
	if err != nil {
		return string(s.raw)
	}
	return formatNumber(f)
}

// formatNumber follows the browser's number-to-text rules: plain decimals
// for magnitudes in [1e-6, 1e21), exponent form outside it.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	// Go writes e+21 / e-07; the browser writes e+21 / e-7.
	str := strconv.FormatFloat(f, 'g', -1, 64)
	mant, exp, _ := strings.Cut(str, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}

// Float parses the value as a number. Quoted numerics are accepted.
func (s Scalar) Float() (float64, bool) {
	text := string(s.raw)
	if len(s.raw) > 0 && s.raw[0] == '"' {
		text = s.String()
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (s Scalar) IsNull() bool {
	return len(s.raw) == 0 || string(s.raw) == "null"
}
