package reservation

// Bounds for a single reservation's duration. Zero or negative hours would
// produce degenerate reservations; more than a day is outside what the
// hourly pricing model is meant for.
const (
	MinHours = 1
	MaxHours = 24
)

// PriceCents computes the amount charged for a reservation. Integer cents
// keep repeated additions (revenue totals) exact.
func PriceCents(hours int, hourlyRateCents int64) int64 {
	return int64(hours) * hourlyRateCents
}
