package tbf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailableSeats(t *testing.T) {
	departure := time.Date(2024, time.December, 23, 8, 0, 0, 0, time.UTC)

	route := Route{
		PrimaryIdentifier: "route-1",
		TotalSeats:        ClassMap{DefaultClassKey: 40},
	}

	t.Run("full inventory with no bookings", func(t *testing.T) {
		assert.Equal(t, ClassMap{DefaultClassKey: 40}, route.AvailableSeats(nil))
	})

	t.Run("bookings without a class consume the default class", func(t *testing.T) {
		bookings := []*Booking{
			{RouteRef: "route-1", DepartureDateTime: departure, Passengers: []Passenger{{Name: "A"}, {Name: "B"}, {Name: "C"}}},
		}

		assert.Equal(t, ClassMap{DefaultClassKey: 37}, route.AvailableSeats(bookings))
	})

	t.Run("class-keyed inventories consume per class", func(t *testing.T) {
		trainRoute := Route{
			PrimaryIdentifier: "route-2",
			TotalSeats:        ClassMap{"Sleeper": 20, "AC": 10},
		}
		bookings := []*Booking{
			{RouteRef: "route-2", DepartureDateTime: departure, ClassType: "AC", Passengers: []Passenger{{Name: "A"}, {Name: "B"}}},
		}

		assert.Equal(t, ClassMap{"Sleeper": 20, "AC": 8}, trainRoute.AvailableSeats(bookings))
	})

	t.Run("unknown classes fall back to the default class", func(t *testing.T) {
		bookings := []*Booking{
			{RouteRef: "route-1", DepartureDateTime: departure, ClassType: "FirstClass", Passengers: []Passenger{{Name: "A"}}},
		}

		assert.Equal(t, ClassMap{DefaultClassKey: 39}, route.AvailableSeats(bookings))
	})

	t.Run("unknown classes with no default are dropped", func(t *testing.T) {
		sleeperOnly := Route{
			PrimaryIdentifier: "route-3",
			TotalSeats:        ClassMap{"Sleeper": 12},
		}
		bookings := []*Booking{
			{RouteRef: "route-3", DepartureDateTime: departure, ClassType: "AC", Passengers: []Passenger{{Name: "A"}}},
		}

		assert.Equal(t, ClassMap{"Sleeper": 12}, sleeperOnly.AvailableSeats(bookings))
	})

	t.Run("oversold counts go negative and stay negative", func(t *testing.T) {
		var passengers []Passenger
		for i := 0; i < 45; i++ {
			passengers = append(passengers, Passenger{})
		}
		bookings := []*Booking{
			{RouteRef: "route-1", DepartureDateTime: departure, Passengers: passengers},
		}

		assert.Equal(t, ClassMap{DefaultClassKey: -5}, route.AvailableSeats(bookings))
	})

	t.Run("routes without an inventory degrade to an empty map", func(t *testing.T) {
		assert.Equal(t, ClassMap{}, (&Route{}).AvailableSeats(nil))
	})
}
