package router

import (
	"theatre_api/handler"
	"theatre_api/middleware"
	"theatre_api/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	plays := v1.Group("/plays", middleware.Protected())
	plays.Get("/", handler.GetAllPlays)
	plays.Get("/:playId", validate.GetById("playId"), handler.GetPlayById)
	plays.Post("/", validate.CreatePlay(), handler.CreatePlay)
	plays.Post("/:playId/image", validate.UploadPlayImage("playId"), handler.UploadPlayImage)

	actors := v1.Group("/actors", middleware.Protected())
	actors.Get("/", handler.GetAllActors)
	actors.Post("/", validate.CreateActor(), handler.CreateActor)

	genres := v1.Group("/genres", middleware.Protected())
	genres.Get("/", handler.GetAllGenres)
	genres.Post("/", validate.CreateGenre(), handler.CreateGenre)

	halls := v1.Group("/theatre-halls", middleware.Protected())
	halls.Get("/", handler.GetAllTheatreHalls)
	halls.Post("/", validate.CreateTheatreHall(), handler.CreateTheatreHall)

	performances := v1.Group("/performances", middleware.Protected())
	performances.Get("/", handler.GetAllPerformances)
	performances.Get("/:performanceId", validate.GetById("performanceId"), handler.GetPerformanceById)
	performances.Post("/", validate.CreatePerformance(), handler.CreatePerformance)
	performances.Put("/:performanceId", validate.UpdatePerformance("performanceId"), handler.UpdatePerformance)
	performances.Delete("/:performanceId", validate.GetById("performanceId"), handler.DeletePerformance)

	reservations := v1.Group("/reservations", middleware.Protected())
	reservations.Get("/", handler.GetMyReservations)
	reservations.Post("/", validate.CreateReservation(), handler.CreateReservation)
	reservations.Get("/:reservationId/qr", validate.GetById("reservationId"), handler.GetReservationQR)

	statistics := v1.Group("/statistics", middleware.Protected())
	statistics.Get("/", handler.GetStatistics)
	statistics.Post("/daily", handler.RunDailyStats)

	// Live seat-map updates. The upgrade gate rejects plain HTTP requests.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/performances/:performanceId", websocket.New(handler.PerformanceSocket))
}
