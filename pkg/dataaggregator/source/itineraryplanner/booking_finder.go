package itineraryplanner

import (
	"time"

	"github.com/yatrago/yatrago/pkg/dataaggregator"
	"github.com/yatrago/yatrago/pkg/dataaggregator/query"
	"github.com/yatrago/yatrago/pkg/tbf"
)

// storeBookingFinder resolves bookings through the registered booking store
// lookup source.
type storeBookingFinder struct {
}

func (f storeBookingFinder) BookingsForRouteDay(routeRef string, date time.Time) ([]*tbf.Booking, error) {
	return dataaggregator.Lookup[[]*tbf.Booking](query.BookingsForRouteDay{
		RouteRef: routeRef,
		Date:     date,
	})
}
