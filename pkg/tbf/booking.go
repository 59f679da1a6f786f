package tbf

import "time"

// Booking is a confirmed reservation against one journey instance of a
// route. Only read by the search engine - seats are decremented when a
// booking is persisted, never here.
type Booking struct {
	PrimaryIdentifier string `groups:"basic" json:"id" bson:",omitempty"`

	CreationDateTime time.Time `groups:"detailed" json:"-" bson:",omitempty"`

	RouteRef string `groups:"basic" json:"routeId" bson:"routeref"`

	// DepartureDateTime pins the booking to exactly one calendar date
	DepartureDateTime time.Time `groups:"basic" json:"departureDateTime"`

	ClassType string `groups:"basic" json:"classType" bson:",omitempty"`

	Passengers []Passenger `groups:"basic" json:"passengers"`
}

type Passenger struct {
	Name string `groups:"basic" json:"name"`
	Age  int    `groups:"basic" json:"age"`
}
