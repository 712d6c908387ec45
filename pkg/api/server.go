package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railboard/railboard/pkg/api/routes"
	"github.com/railboard/railboard/pkg/traincache"
)

func SetupServer(trainCache *traincache.TrainCache) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	webApp.Get("version", routes.APIVersion)

	routes.TimelineRouter(webApp.Group("/"), trainCache)

	return webApp
}
