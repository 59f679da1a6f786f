package tbf

import (
	"strings"
	"time"

	"github.com/yatrago/yatrago/pkg/util"
)

// Route is a scheduled service offering between two terminal locations,
// possibly calling at intermediate stops along the way.
type Route struct {
	PrimaryIdentifier string `groups:"basic" json:"id" bson:",omitempty"`

	CreationDateTime     time.Time `groups:"detailed" json:"-" bson:",omitempty"`
	ModificationDateTime time.Time `groups:"detailed" json:"-" bson:",omitempty"`

	Name          string        `groups:"basic" json:"name"`
	TransportType TransportType `groups:"basic" json:"type" bson:"transporttype"`
	Operator      string        `groups:"basic" json:"operator"`

	StartPoint string `groups:"basic" json:"startPoint"`
	EndPoint   string `groups:"basic" json:"endPoint"`

	// Stops is ordered in travel direction and never includes the
	// terminals themselves
	Stops []Stop `groups:"detailed" json:"stops"`

	ScheduleType ScheduleType `groups:"detailed" json:"scheduleType"`
	DaysOfWeek   []string     `groups:"detailed" json:"daysOfWeek,omitempty" bson:",omitempty"`
	SpecificDate time.Time    `groups:"detailed" json:"specificDate,omitempty" bson:",omitempty"`

	StartTime            string `groups:"basic" json:"startTime"`
	EstimatedArrivalTime string `groups:"basic" json:"estimatedArrivalTime"`

	TotalSeats ClassMap `groups:"detailed" json:"totalSeats"`
	Price      FareMap  `groups:"basic" json:"price"`
}

type Stop struct {
	Name           string  `groups:"basic" json:"stopName" bson:"name"`
	PriceFromStart float64 `groups:"basic" json:"priceFromStart"`

	// Local estimate only, never used for transfer timing
	EstimatedTimeAtStop string `groups:"basic" json:"estimatedTimeAtStop"`
}

// OperatesOn decides whether the route runs on the given calendar date.
// Routes with an unrecognised schedule type never match.
func (r *Route) OperatesOn(date time.Time) bool {
	switch r.ScheduleType {
	case ScheduleTypeDaily:
		return true
	case ScheduleTypeWeekly:
		return util.ContainsString(r.DaysOfWeek, date.Weekday().String())
	case ScheduleTypeSpecificDate:
		specificDate := r.SpecificDate.UTC()
		date = date.UTC()

		return specificDate.Year() == date.Year() && specificDate.YearDay() == date.YearDay()
	}

	return false
}

// StopPosition returns the position of a location within the route using the
// scheme startPoint=0, stops=1..N, endPoint=N+1. Names are compared
// case-insensitively and must match exactly.
func (r *Route) StopPosition(name string) (int, bool) {
	if strings.EqualFold(r.StartPoint, name) {
		return 0, true
	}

	if strings.EqualFold(r.EndPoint, name) {
		return len(r.Stops) + 1, true
	}

	for index, stop := range r.Stops {
		if strings.EqualFold(stop.Name, name) {
			return index + 1, true
		}
	}

	return 0, false
}

// MatchesDirect reports whether the route can carry a passenger from one
// location to another without a transfer. The origin must strictly precede
// the destination in travel order.
func (r *Route) MatchesDirect(from string, to string) bool {
	fromPosition, fromFound := r.StopPosition(from)
	toPosition, toFound := r.StopPosition(to)

	return fromFound && toFound && fromPosition < toPosition
}

// BasePrice returns the fare under the default class key. Class-keyed routes
// without a default entry yield zero.
func (r *Route) BasePrice() float64 {
	return r.Price[DefaultClassKey]
}
