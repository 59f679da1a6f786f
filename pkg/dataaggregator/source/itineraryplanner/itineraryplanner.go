package itineraryplanner

import (
	"reflect"

	"github.com/yatrago/yatrago/pkg/dataaggregator/query"
	"github.com/yatrago/yatrago/pkg/dataaggregator/source"
	"github.com/yatrago/yatrago/pkg/tbf"
)

type Source struct {
}

func (s Source) GetName() string {
	return "Itinerary Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]tbf.Itinerary{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Itineraries:
		return s.ItinerariesQuery(q.(query.Itineraries))
	default:
		return nil, source.UnsupportedSourceError
	}
}
