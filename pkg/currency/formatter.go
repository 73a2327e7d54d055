package currency

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingAmount = regexp.MustCompile(`\$?(\d+\.?\d*)`)

// ParseAmount parses a vendor decimal string such as "1234.50".
func ParseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ExtractAmount finds the first number in free-form price text like
// "$120/night" or "245.00 USD / night".
func ExtractAmount(s string) (float64, bool) {
	m := leadingAmount.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Format renders an amount with two decimals and comma grouping, prefixed
// by the currency code when one is given.
func Format(amount float64, code string) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	intStr := strconv.FormatInt(cents/100, 10)
	formatted := fmt.Sprintf("%s.%02d", addThousandsSeparator(intStr, ","), cents%100)

	if code != "" {
		formatted = code + " " + formatted
	}
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
