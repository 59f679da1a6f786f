package tbf

import (
	"github.com/rs/zerolog/log"
)

// AvailableSeats computes the remaining seats per fare class by subtracting
// the passenger counts of the given same-day bookings from the route's total
// inventory. Bookings without a class consume from the default class, and
// bookings whose class is missing from the inventory fall back to the
// default class as well.
//
// Results are deliberately not clamped at zero - a negative count means the
// journey instance is oversold and callers must be able to see that.
func (r *Route) AvailableSeats(bookings []*Booking) ClassMap {
	available := ClassMap{}
	for classKey, seats := range r.TotalSeats {
		available[classKey] = seats
	}

	for _, booking := range bookings {
		classType := booking.ClassType
		if classType == "" {
			classType = DefaultClassKey
		}

		passengerCount := len(booking.Passengers)

		if _, exists := available[classType]; exists {
			available[classType] -= passengerCount
		} else if _, exists := available[DefaultClassKey]; exists {
			available[DefaultClassKey] -= passengerCount
		} else {
			log.Warn().
				Str("route", r.PrimaryIdentifier).
				Str("booking", booking.PrimaryIdentifier).
				Str("class", classType).
				Msg("Booking references a seat class the route does not carry")
		}
	}

	return available
}
