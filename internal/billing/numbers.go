package billing

import (
	"fmt"
	"math/rand"
	"time"
)

// NewInvoiceNumber produces a human-facing invoice number from the
// current epoch millis and a random suffix, e.g. INV-56789012-042.
// It is best-effort unique, not a primary key: collisions are unlikely
// but possible.
func NewInvoiceNumber() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return fmt.Sprintf("INV-%s-%03d", millis, rand.Intn(1000))
}

// NewOrderNumber produces the default order number used when intake
// leaves the field blank. Order numbers are user-editable free text.
func NewOrderNumber() string {
	return fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
}
