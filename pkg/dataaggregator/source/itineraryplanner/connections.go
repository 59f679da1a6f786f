package itineraryplanner

import (
	"fmt"
	"strings"
	"time"

	"github.com/yatrago/yatrago/pkg/dataaggregator/query"
	"github.com/yatrago/yatrago/pkg/tbf"
)

const minLayover = 1 * time.Hour
const maxLayover = 12 * time.Hour

// findConnections searches for two-leg itineraries joined at a single
// transfer point. Transfer candidates are every stop after the origin on the
// first leg plus its terminal, but a connection is only timed when the
// transfer point is the first leg's endPoint and the second leg's startPoint
// - departure and arrival times are only authoritative at route terminals,
// the per-stop estimates are not trusted for layover computation.
func findConnections(candidates []tbf.Route, bookings BookingFinder, q query.Itineraries) ([]tbf.Itinerary, error) {
	var firstLegs []*tbf.Route
	var secondLegs []*tbf.Route

	for index := range candidates {
		route := &candidates[index]

		if strings.EqualFold(route.StartPoint, q.From) || callsAt(route, q.From) {
			firstLegs = append(firstLegs, route)
		}

		if strings.EqualFold(route.EndPoint, q.To) || callsAt(route, q.To) {
			secondLegs = append(secondLegs, route)
		}
	}

	var connections []tbf.Itinerary

	for _, leg1 := range firstLegs {
		fromPosition, found := leg1.StopPosition(q.From)
		if !found {
			continue
		}

		var transferPoints []string
		for index, stop := range leg1.Stops {
			if index+1 > fromPosition {
				transferPoints = append(transferPoints, stop.Name)
			}
		}
		transferPoints = append(transferPoints, leg1.EndPoint)

		for _, transferPoint := range transferPoints {
			for _, leg2 := range secondLegs {
				if leg2.PrimaryIdentifier == leg1.PrimaryIdentifier {
					continue
				}

				transferPosition, transferFound := leg2.StopPosition(transferPoint)
				if !transferFound {
					continue
				}

				toPosition, toFound := leg2.StopPosition(q.To)
				if !toFound || toPosition <= transferPosition {
					continue
				}

				// Layovers can only be computed terminal to terminal
				if !strings.EqualFold(transferPoint, leg1.EndPoint) || !strings.EqualFold(leg2.StartPoint, transferPoint) {
					continue
				}

				connection, err := buildConnection(leg1, leg2, transferPoint, bookings, q)
				if err != nil {
					return nil, err
				}

				if connection != nil {
					connections = append(connections, *connection)
				}
			}
		}
	}

	return connections, nil
}

func buildConnection(leg1 *tbf.Route, leg2 *tbf.Route, transferPoint string, bookings BookingFinder, q query.Itineraries) (*tbf.ConnectingItinerary, error) {
	leg1Arrival, err := tbf.ProjectTimeOnDate(q.Date, leg1.EstimatedArrivalTime)
	if err != nil {
		return nil, nil
	}

	leg2Departure, err := tbf.ProjectTimeOnDate(q.Date, leg2.StartTime)
	if err != nil {
		return nil, nil
	}

	// Negative layover means leg 2 leaves before leg 1 arrives when both are
	// projected onto the search date - next-day transfers are not modelled
	layover := leg2Departure.Sub(leg1Arrival)
	if layover < minLayover || layover > maxLayover {
		return nil, nil
	}

	leg1Bookings, err := bookings.BookingsForRouteDay(leg1.PrimaryIdentifier, q.Date)
	if err != nil {
		return nil, err
	}

	leg2Bookings, err := bookings.BookingsForRouteDay(leg2.PrimaryIdentifier, q.Date)
	if err != nil {
		return nil, err
	}

	totalDuration := time.Duration(0)

	leg1Departure, leg1Err := tbf.ProjectTimeOnDate(q.Date, leg1.StartTime)
	leg2Arrival, leg2Err := tbf.ProjectTimeOnDate(q.Date, leg2.EstimatedArrivalTime)
	if leg1Err == nil && leg2Err == nil {
		totalDuration = leg2Arrival.Sub(leg1Departure)
	}

	return &tbf.ConnectingItinerary{
		IsConnecting: true,
		Legs: []tbf.ItineraryLeg{
			{Route: *leg1, AvailableSeats: leg1.AvailableSeats(leg1Bookings)},
			{Route: *leg2, AvailableSeats: leg2.AvailableSeats(leg2Bookings)},
		},
		TransferPoint:   transferPoint,
		LayoverDuration: formatMinutes(layover),
		TotalFare:       leg1.BasePrice() + leg2.BasePrice(),
		TotalDuration:   formatHoursMinutes(totalDuration),
	}, nil
}

func formatMinutes(duration time.Duration) string {
	return fmt.Sprintf("%d mins", int(duration.Minutes()))
}

func formatHoursMinutes(duration time.Duration) string {
	minutes := int(duration.Minutes())

	return fmt.Sprintf("%d hrs %d mins", minutes/60, minutes%60)
}
