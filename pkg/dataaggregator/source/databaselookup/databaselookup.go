package databaselookup

import (
	"reflect"

	"github.com/yatrago/yatrago/pkg/dataaggregator/query"
	"github.com/yatrago/yatrago/pkg/dataaggregator/source"
	"github.com/yatrago/yatrago/pkg/dataaggregator/source/cachedresults"
	"github.com/yatrago/yatrago/pkg/tbf"
)

type Source struct {
	CachedResults *cachedresults.Cache
}

func (s *Source) Setup() {
	s.CachedResults = &cachedresults.Cache{}
	s.CachedResults.Setup()
}

func (s Source) GetName() string {
	return "Database Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(tbf.Route{}),
		reflect.TypeOf([]tbf.Route{}),
		reflect.TypeOf([]*tbf.Booking{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Route:
		return s.RouteQuery(q.(query.Route))
	case query.RouteCandidates:
		return s.RouteCandidatesQuery(q.(query.RouteCandidates))
	case query.BookingsForRouteDay:
		return s.BookingsForRouteDayQuery(q.(query.BookingsForRouteDay))
	default:
		return nil, source.UnsupportedSourceError
	}
}
