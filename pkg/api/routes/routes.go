package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/yatrago/yatrago/pkg/dataaggregator"
	"github.com/yatrago/yatrago/pkg/dataaggregator/query"
	"github.com/yatrago/yatrago/pkg/database"
	"github.com/yatrago/yatrago/pkg/tbf"
	"go.mongodb.org/mongo-driver/bson"
)

func RoutesRouter(router fiber.Router) {
	router.Get("/", listRoutes)
	router.Get("/:identifier", getRoute)
}

func listRoutes(c *fiber.Ctx) error {
	transportTypeString := c.Query("type")

	if transportTypeString == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A type filter must be applied to the request",
		})
	}

	transportType := tbf.TransportTypeFromString(transportTypeString)
	if transportType == tbf.TransportTypeUnknown {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter type must be one of bus, train, air",
		})
	}

	transitRoutes := []tbf.Route{}

	routesCollection := database.GetCollection("routes")

	cursor, err := routesCollection.Find(context.Background(), bson.M{"transporttype": transportType})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	for cursor.Next(context.TODO()) {
		var route tbf.Route
		if err := cursor.Decode(&route); err != nil {
			log.Error().Err(err).Msg("Failed to decode Route")
			continue
		}

		transitRoutes = append(transitRoutes, route)
	}

	reducedRoutes, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, transitRoutes)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sorry an error occurred converting routes to JSON",
		})
	}

	return c.JSON(reducedRoutes)
}

func getRoute(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	route, err := dataaggregator.Lookup[*tbf.Route](query.Route{
		PrimaryIdentifier: identifier,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(route)
}
