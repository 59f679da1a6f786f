package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yatrago/yatrago/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.ItinerariesRouter(group.Group("/itineraries"))
	routes.RoutesRouter(group.Group("/routes"))

	return webApp.Listen(listen)
}
