package query

import (
	"time"

	"github.com/yatrago/yatrago/pkg/tbf"
	"go.mongodb.org/mongo-driver/bson"
)

type Route struct {
	PrimaryIdentifier string
}

func (r *Route) ToBson() bson.M {
	if r.PrimaryIdentifier != "" {
		return bson.M{"primaryidentifier": r.PrimaryIdentifier}
	}

	return nil
}

// RouteCandidates selects every route of a transport type that could operate
// on a date - daily routes, weekly routes covering that weekday and one-off
// routes on that exact day. This is a coarse pre-filter; the planner
// re-applies the schedule predicate per route.
type RouteCandidates struct {
	TransportType tbf.TransportType
	Date          time.Time
}

func (r *RouteCandidates) ToBson() bson.M {
	dayStart, dayEnd := tbf.DayWindow(r.Date)

	return bson.M{
		"transporttype": r.TransportType,
		"$or": bson.A{
			bson.M{"scheduletype": tbf.ScheduleTypeDaily},
			bson.M{"scheduletype": tbf.ScheduleTypeWeekly, "daysofweek": r.Date.Weekday().String()},
			bson.M{"scheduletype": tbf.ScheduleTypeSpecificDate, "specificdate": bson.M{"$gte": dayStart, "$lt": dayEnd}},
		},
	}
}
