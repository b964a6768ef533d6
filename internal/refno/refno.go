// Package refno generates the human-facing reference numbers printed on
// documents: invoice numbers from the shop-name initials plus a timestamp
// suffix, purchase numbers and payment transaction ids with fixed prefixes.
// Uniqueness rides on timestamp entropy plus a short random tail.
package refno

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Invoice builds a number like "MT-1693526400123-4af2" for shop "Mobile Town".
// Shops with no usable initials fall back to "INV".
func Invoice(shopName string, at time.Time) string {
	initials := shopInitials(shopName)
	if initials == "" {
		initials = "INV"
	}
	return fmt.Sprintf("%s-%d-%s", initials, at.UnixMilli(), randomTail(2))
}

func Purchase(at time.Time) string {
	return fmt.Sprintf("PUR-%d-%s", at.UnixMilli(), randomTail(2))
}

// Transaction is used when the operator does not supply a payment reference.
func Transaction() string {
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), randomTail(3))
}

func shopInitials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
	}
	return b.String()
}

func randomTail(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano()%10000)
	}
	return hex.EncodeToString(buf)
}
