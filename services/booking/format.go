package booking

import (
	"fmt"
	"time"
)

// formatDateTime renders a timestamp the way it is shown to the end user,
// e.g. "Monday, 2 January 2006 at 15:04".
func formatDateTime(t time.Time) string {
	return t.Format("Monday, 2 January 2006 at 15:04")
}

// formatPrice renders cents as a dollar amount, e.g. "$25.00".
func formatPrice(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
