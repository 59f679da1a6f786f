package databaselookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yatrago/yatrago/pkg/dataaggregator/query"
	"github.com/yatrago/yatrago/pkg/database"
	"github.com/yatrago/yatrago/pkg/tbf"
)

func (s Source) RouteQuery(q query.Route) (*tbf.Route, error) {
	collection := database.GetCollection("routes")
	var route *tbf.Route
	collection.FindOne(context.Background(), q.ToBson()).Decode(&route)

	if route == nil {
		return nil, errors.New("could not find a matching Route")
	} else {
		return route, nil
	}
}

// RouteCandidatesQuery returns every route that could operate for the given
// transport type and date. Candidate sets only depend on static schedule
// data so they are cached for a short while.
func (s Source) RouteCandidatesQuery(q query.RouteCandidates) ([]tbf.Route, error) {
	cacheItemPath := fmt.Sprintf("cachedresults/routecandidates/%s/%s", q.TransportType, q.Date.Format("2006-01-02"))
	cachedObject, err := s.CachedResults.Cache.Get(context.Background(), cacheItemPath)

	// Load from cache
	if err == nil {
		var routes []tbf.Route
		err := json.Unmarshal([]byte(cachedObject), &routes)

		if err != nil {
			return nil, err
		}

		return routes, nil
	}

	routesCollection := database.GetCollection("routes")

	cursor, err := routesCollection.Find(context.Background(), q.ToBson())
	if err != nil {
		return nil, err
	}

	var routes []tbf.Route

	for cursor.Next(context.TODO()) {
		var route tbf.Route
		if err := cursor.Decode(&route); err != nil {
			return nil, err
		}

		routes = append(routes, route)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	// Save into cache
	routesJson, _ := json.Marshal(routes)
	s.CachedResults.Cache.Set(context.Background(), cacheItemPath, string(routesJson))

	return routes, nil
}
