package timeutil

import "time"

// InvoiceDueDays is how long after issue an invoice falls due.
const InvoiceDueDays = 30

// Now returns the current time in UTC. All stored timestamps use UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// DueDate returns the payment due date for an invoice issued at t.
func DueDate(t time.Time) time.Time {
	return t.AddDate(0, 0, InvoiceDueDays)
}

// Common layouts for document formatting
const (
	DateLayout    = "2006-01-02"
	DisplayLayout = "02 Jan 2006"
)
