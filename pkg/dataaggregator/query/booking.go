package query

import (
	"time"

	"github.com/yatrago/yatrago/pkg/tbf"
	"go.mongodb.org/mongo-driver/bson"
)

// BookingsForRouteDay selects the confirmed bookings consuming seats from
// one journey instance - a single route on a single calendar date.
type BookingsForRouteDay struct {
	RouteRef string
	Date     time.Time
}

func (b *BookingsForRouteDay) ToBson() bson.M {
	dayStart, dayEnd := tbf.DayWindow(b.Date)

	return bson.M{
		"routeref":          b.RouteRef,
		"departuredatetime": bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
}
