package docgen

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords renders the integer part of an amount in the South Asian
// numbering scheme used on the printed documents: crore, lakh, thousand,
// hundred. "Taka One Lakh Thirty Thousand Only".
func AmountInWords(amount decimal.Decimal) string {
	n := amount.IntPart()
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return "Taka Zero Only"
	}

	var parts []string
	appendScale := func(value int64, scale string) int64 {
		if value > 0 {
			parts = append(parts, belowThousand(value))
			if scale != "" {
				parts = append(parts, scale)
			}
		}
		return 0
	}

	appendScale(n/10000000, "Crore")
	n %= 10000000
	appendScale(n/100000, "Lakh")
	n %= 100000
	appendScale(n/1000, "Thousand")
	n %= 1000
	appendScale(n, "")

	return "Taka " + strings.Join(parts, " ") + " Only"
}

func belowThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tensWords[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}
