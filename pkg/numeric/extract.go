// Package numeric coerces heterogeneous scraped values into numbers.
//
// Scraped cost fields arrive as missing values, plain numbers, or strings
// like "R 27 000" and "1,210,000". Anything unparseable degrades to zero so
// that note generation never fails on incomplete listing data.
package numeric

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

var cleaner = strings.NewReplacer(
	"R", "",
	"$", "",
	",", "",
	" ", "",
	" ", "",
)

// Amount coerces an arbitrary value into a float64. Nil yields 0, numeric
// types are returned as-is, and strings are parsed with AmountString. Any
// other type yields 0.
func Amount(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		return AmountString(n)
	default:
		return 0
	}
}

// AmountString parses a currency-like string into a float64. Currency
// markers, thousands separators, and whitespace are stripped before parsing
// the first decimal number found. Unparseable input yields 0.
func AmountString(s string) float64 {
	cleaned := cleaner.Replace(strings.TrimSpace(s))
	match := numberPattern.FindString(cleaned)
	if match == "" {
		return 0
	}
	val, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return val
}
