package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yatrago/yatrago/pkg/dataaggregator"
	"github.com/yatrago/yatrago/pkg/dataaggregator/query"
	"github.com/yatrago/yatrago/pkg/tbf"
)

func ItinerariesRouter(router fiber.Router) {
	router.Get("/search", searchItineraries)
}

func searchItineraries(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	dateString := c.Query("date")
	transportTypeString := c.Query("type")
	classType := c.Query("class")

	if from == "" || to == "" || dateString == "" || transportTypeString == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameters from, to, date & type are required",
		})
	}

	// Date-only parse lands on midnight UTC, keeping weekday resolution
	// independent of the server's local timezone
	date, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter date should be formatted YYYY-MM-DD",
		})
	}

	transportType := tbf.TransportTypeFromString(transportTypeString)
	if transportType == tbf.TransportTypeUnknown {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter type must be one of bus, train, air",
		})
	}

	itineraries, err := dataaggregator.Lookup[[]tbf.Itinerary](query.Itineraries{
		From:          from,
		To:            to,
		Date:          date,
		TransportType: transportType,
		ClassType:     classType,
	})

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(itineraries)
}
