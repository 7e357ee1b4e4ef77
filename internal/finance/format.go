package finance

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency formats d as $1,234.56. Negative amounts are -$1,234.56.
// The digits come from the decimal itself, so no precision is lost.
func Currency(d decimal.Decimal) string {
	rounded := d.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	whole, frac, _ := strings.Cut(rounded.StringFixed(2), ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// groupThousands inserts separators into a string of digits.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprintf("%d", n)
	}

	// wider than int64
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Factor formats a discount factor with four decimals.
func Factor(d decimal.Decimal) string {
	return d.StringFixed(4)
}
