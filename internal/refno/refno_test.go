package refno

import (
	"strings"
	"testing"
	"time"
)

func TestInvoiceUsesShopInitials(t *testing.T) {
	at := time.UnixMilli(1693526400123)

	ref := Invoice("Mobile Tower", at)
	if !strings.HasPrefix(ref, "MT-1693526400123-") {
		t.Errorf("ref = %q", ref)
	}

	fallback := Invoice("  ", at)
	if !strings.HasPrefix(fallback, "INV-") {
		t.Errorf("fallback ref = %q", fallback)
	}
}

func TestPurchaseAndTransactionPrefixes(t *testing.T) {
	if ref := Purchase(time.Now()); !strings.HasPrefix(ref, "PUR-") {
		t.Errorf("purchase ref = %q", ref)
	}
	if ref := Transaction(); !strings.HasPrefix(ref, "TXN-") {
		t.Errorf("transaction ref = %q", ref)
	}
}

func TestTransactionIDsDiffer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ref := Transaction()
		if seen[ref] {
			t.Fatalf("duplicate transaction id %q", ref)
		}
		seen[ref] = true
	}
}
