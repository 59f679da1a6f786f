package itineraryplanner

import (
	"strings"
	"time"

	"github.com/yatrago/yatrago/pkg/dataaggregator"
	"github.com/yatrago/yatrago/pkg/dataaggregator/query"
	"github.com/yatrago/yatrago/pkg/tbf"
	"github.com/yatrago/yatrago/pkg/util"
	"golang.org/x/exp/slices"
)

// Connection search only kicks in when direct results are this sparse
const directResultsThreshold = 5

// BookingFinder supplies the confirmed bookings for one route on one
// calendar date. The planner itself never touches the booking store so that
// planning stays a pure computation over snapshots.
type BookingFinder interface {
	BookingsForRouteDay(routeRef string, date time.Time) ([]*tbf.Booking, error)
}

func (s Source) ItinerariesQuery(q query.Itineraries) ([]tbf.Itinerary, error) {
	candidates, err := dataaggregator.Lookup[[]tbf.Route](query.RouteCandidates{
		TransportType: q.TransportType,
		Date:          q.Date,
	})
	if err != nil {
		return nil, err
	}

	return PlanItineraries(candidates, storeBookingFinder{}, q)
}

// PlanItineraries runs the full search over a candidate snapshot: direct
// matches first, then connecting itineraries when direct results are sparse.
// Results keep discovery order, direct before connecting.
func PlanItineraries(candidates []tbf.Route, bookings BookingFinder, q query.Itineraries) ([]tbf.Itinerary, error) {
	// The store pre-filter is coarser than the schedule predicate
	util.InPlaceFilter(&candidates, func(route tbf.Route) bool {
		return route.OperatesOn(q.Date)
	})

	results := []tbf.Itinerary{}

	for _, route := range candidates {
		if !route.MatchesDirect(q.From, q.To) {
			continue
		}

		dayBookings, err := bookings.BookingsForRouteDay(route.PrimaryIdentifier, q.Date)
		if err != nil {
			return nil, err
		}

		results = append(results, tbf.DirectItinerary{
			Route:          route,
			AvailableSeats: route.AvailableSeats(dayBookings),
			IsDirect:       true,
		})
	}

	if len(results) < directResultsThreshold {
		connections, err := findConnections(candidates, bookings, q)
		if err != nil {
			return nil, err
		}

		results = append(results, connections...)
	}

	return results, nil
}

func callsAt(route *tbf.Route, name string) bool {
	return slices.ContainsFunc(route.Stops, func(stop tbf.Stop) bool {
		return strings.EqualFold(stop.Name, name)
	})
}
