package tbf

// Itinerary is one option returned by an itinerary search, either a
// DirectItinerary or a ConnectingItinerary. Results are constructed fresh
// per search and never persisted.
type Itinerary interface {
	itineraryResult()
}

type DirectItinerary struct {
	Route `groups:"basic"`

	AvailableSeats ClassMap `groups:"basic" json:"availableSeats"`
	IsDirect       bool     `groups:"basic" json:"isDirect"`
}

func (DirectItinerary) itineraryResult() {}

type ItineraryLeg struct {
	Route `groups:"basic"`

	AvailableSeats ClassMap `groups:"basic" json:"availableSeats"`
}

type ConnectingItinerary struct {
	IsConnecting bool `groups:"basic" json:"isConnecting"`

	Legs          []ItineraryLeg `groups:"basic" json:"legs"`
	TransferPoint string         `groups:"basic" json:"transferPoint"`

	LayoverDuration string  `groups:"basic" json:"layoverDuration"`
	TotalFare       float64 `groups:"basic" json:"totalFare"`
	TotalDuration   string  `groups:"basic" json:"totalDuration"`
}

func (ConnectingItinerary) itineraryResult() {}
