package itineraryplanner

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yatrago/yatrago/pkg/dataaggregator/query"
	"github.com/yatrago/yatrago/pkg/tbf"
)

// memoryBookingFinder mimics the booking store over an in-memory snapshot,
// applying the same single-day window as the real query.
type memoryBookingFinder struct {
	bookings []*tbf.Booking
}

func (f memoryBookingFinder) BookingsForRouteDay(routeRef string, date time.Time) ([]*tbf.Booking, error) {
	dayStart, dayEnd := tbf.DayWindow(date)

	var matched []*tbf.Booking
	for _, booking := range f.bookings {
		if booking.RouteRef != routeRef {
			continue
		}
		if booking.DepartureDateTime.Before(dayStart) || !booking.DepartureDateTime.Before(dayEnd) {
			continue
		}

		matched = append(matched, booking)
	}

	return matched, nil
}

// failingBookingFinder mimics an unreachable booking store.
type failingBookingFinder struct {
	err error
}

func (f failingBookingFinder) BookingsForRouteDay(routeRef string, date time.Time) ([]*tbf.Booking, error) {
	return nil, f.err
}

// 2024-12-23 is a Monday
var monday = time.Date(2024, time.December, 23, 0, 0, 0, 0, time.UTC)

func busRoute(id string, start string, end string, departure string, arrival string) tbf.Route {
	return tbf.Route{
		PrimaryIdentifier:    id,
		Name:                 id,
		TransportType:        tbf.TransportTypeBus,
		ScheduleType:         tbf.ScheduleTypeDaily,
		StartPoint:           start,
		EndPoint:             end,
		StartTime:            departure,
		EstimatedArrivalTime: arrival,
		TotalSeats:           tbf.ClassMap{tbf.DefaultClassKey: 40},
		Price:                tbf.FareMap{tbf.DefaultClassKey: 200},
	}
}

func TestPlanItinerariesDirect(t *testing.T) {
	route := busRoute("R1", "Agra", "Delhi", "08:00", "12:00")
	route.Stops = []tbf.Stop{
		{Name: "Mathura", PriceFromStart: 80},
	}

	searchQuery := query.Itineraries{From: "Agra", To: "Delhi", Date: monday, TransportType: tbf.TransportTypeBus}

	t.Run("direct match carries seat availability", func(t *testing.T) {
		finder := memoryBookingFinder{bookings: []*tbf.Booking{
			{
				RouteRef:          "R1",
				DepartureDateTime: monday.Add(8 * time.Hour),
				Passengers:        []tbf.Passenger{{Name: "A"}, {Name: "B"}, {Name: "C"}},
			},
			{
				// Different calendar day, must not consume seats
				RouteRef:          "R1",
				DepartureDateTime: monday.AddDate(0, 0, 1).Add(8 * time.Hour),
				Passengers:        []tbf.Passenger{{Name: "D"}},
			},
		}}

		results, err := PlanItineraries([]tbf.Route{route}, finder, searchQuery)
		require.NoError(t, err)
		require.Len(t, results, 1)

		direct, ok := results[0].(tbf.DirectItinerary)
		require.True(t, ok)
		assert.True(t, direct.IsDirect)
		assert.Equal(t, "R1", direct.PrimaryIdentifier)
		assert.Equal(t, tbf.ClassMap{tbf.DefaultClassKey: 37}, direct.AvailableSeats)
	})

	t.Run("intermediate stop pairs match in travel order only", func(t *testing.T) {
		fromStop := query.Itineraries{From: "Mathura", To: "Delhi", Date: monday, TransportType: tbf.TransportTypeBus}
		results, err := PlanItineraries([]tbf.Route{route}, memoryBookingFinder{}, fromStop)
		require.NoError(t, err)
		assert.Len(t, results, 1)

		reverse := query.Itineraries{From: "Delhi", To: "Agra", Date: monday, TransportType: tbf.TransportTypeBus}
		results, err = PlanItineraries([]tbf.Route{route}, memoryBookingFinder{}, reverse)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("a failing booking store is fatal for the search", func(t *testing.T) {
		storeErr := errors.New("bookings store unreachable")

		results, err := PlanItineraries([]tbf.Route{route}, failingBookingFinder{err: storeErr}, searchQuery)
		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, results)
	})

	t.Run("schedule predicate is re-applied per route", func(t *testing.T) {
		weekendOnly := busRoute("R2", "Agra", "Delhi", "09:00", "13:00")
		weekendOnly.ScheduleType = tbf.ScheduleTypeWeekly
		weekendOnly.DaysOfWeek = []string{"Saturday", "Sunday"}

		results, err := PlanItineraries([]tbf.Route{weekendOnly}, memoryBookingFinder{}, searchQuery)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestPlanItinerariesConnectionThreshold(t *testing.T) {
	// A pair that forms a valid one-transfer connection from Agra to Kanpur
	leg1 := busRoute("L1", "Agra", "Lucknow", "08:00", "10:00")
	leg2 := busRoute("L2", "Lucknow", "Kanpur", "11:00", "13:00")

	directs := []tbf.Route{
		busRoute("D1", "Agra", "Kanpur", "06:00", "12:00"),
		busRoute("D2", "Agra", "Kanpur", "07:00", "13:00"),
		busRoute("D3", "Agra", "Kanpur", "08:00", "14:00"),
		busRoute("D4", "Agra", "Kanpur", "09:00", "15:00"),
		busRoute("D5", "Agra", "Kanpur", "10:00", "16:00"),
	}

	searchQuery := query.Itineraries{From: "Agra", To: "Kanpur", Date: monday, TransportType: tbf.TransportTypeBus}

	t.Run("connection search is skipped with enough direct results", func(t *testing.T) {
		candidates := append([]tbf.Route{leg1, leg2}, directs...)

		results, err := PlanItineraries(candidates, memoryBookingFinder{}, searchQuery)
		require.NoError(t, err)
		require.Len(t, results, 5)

		for _, result := range results {
			_, isDirect := result.(tbf.DirectItinerary)
			assert.True(t, isDirect)
		}
	})

	t.Run("sparse direct results trigger connection search", func(t *testing.T) {
		candidates := append([]tbf.Route{leg1, leg2}, directs[:4]...)

		results, err := PlanItineraries(candidates, memoryBookingFinder{}, searchQuery)
		require.NoError(t, err)
		require.Len(t, results, 5)

		// Direct results first, connecting appended after
		for _, result := range results[:4] {
			_, isDirect := result.(tbf.DirectItinerary)
			assert.True(t, isDirect)
		}

		connecting, ok := results[4].(tbf.ConnectingItinerary)
		require.True(t, ok)
		assert.True(t, connecting.IsConnecting)
		assert.Equal(t, "Lucknow", connecting.TransferPoint)
	})
}
