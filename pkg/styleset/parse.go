package styleset

import (
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseLength extracts the numeric part of a CSS length such as "16px",
// "1.4", "50%" or "2rem". Numbers are returned as is. Anything else
// (missing values, empty strings, keywords like "auto", garbage) yields
// fallback; the result is never NaN.
func ParseLength(v Value, fallback float64) float64 {
	switch v.Kind() {
	case KindNumber:
		n, _ := v.Num()
		return n
	case KindString:
		s, _ := v.Str()
		if n, ok := lengthOf(s); ok {
			return n
		}
	}
	return fallback
}

// lengthOf tokenizes s with the CSS lexer and reads the first numeric token.
// Leading whitespace is skipped; any other leading token means s is not a length.
func lengthOf(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	lexer := css.NewLexer(parse.NewInputString(s))
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.WhitespaceToken:
			continue
		case css.NumberToken:
			return parseNumber(string(data))
		case css.DimensionToken:
			return parseNumber(numericPrefix(string(data)))
		case css.PercentageToken:
			return parseNumber(strings.TrimSuffix(string(data), "%"))
		}
		return 0, false
	}
}

// numericPrefix strips the unit from a dimension token ("16px" -> "16").
func numericPrefix(s string) string {
	end := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' ||
			((r == 'e' || r == 'E') && i > 0 && i+1 < len(s) && isExponentTail(s[i+1:])) {
			end = i + 1
			continue
		}
		break
	}
	return s[:end]
}

func isExponentTail(s string) bool {
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseInt is ParseLength rounded to the nearest integer
func ParseInt(v Value, fallback int) int {
	f := ParseLength(v, math.NaN())
	if math.IsNaN(f) {
		return fallback
	}
	f = math.Round(f)
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(f)
}

// Px renders n as a pixel length Value, e.g. Px(16) == String("16px")
func Px(n int) Value {
	return String(strconv.Itoa(n) + "px")
}

// Clamp limits n to [lo, hi]
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
