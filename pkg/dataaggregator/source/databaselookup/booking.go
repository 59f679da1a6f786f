package databaselookup

import (
	"context"

	"github.com/yatrago/yatrago/pkg/dataaggregator/query"
	"github.com/yatrago/yatrago/pkg/database"
	"github.com/yatrago/yatrago/pkg/tbf"
)

func (s Source) BookingsForRouteDayQuery(q query.BookingsForRouteDay) ([]*tbf.Booking, error) {
	bookingsCollection := database.GetCollection("bookings")

	cursor, err := bookingsCollection.Find(context.Background(), q.ToBson())
	if err != nil {
		return nil, err
	}

	var bookings []*tbf.Booking

	for cursor.Next(context.TODO()) {
		var booking *tbf.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
