package handler

import (
	"theatre_api/constants"
	"theatre_api/database"
	"theatre_api/helper"
	"theatre_api/model"
	"theatre_api/utils"

	"github.com/gofiber/fiber/v2"
)

type occupancyRow struct {
	PerformanceId uint    `json:"performanceId"`
	PlayTitle     string  `json:"playTitle"`
	Capacity      int64   `json:"capacity"`
	TicketsSold   int64   `json:"ticketsSold"`
	Occupancy     float64 `json:"occupancy"`
}

// GetStatistics summarizes the box office for staff: record counts plus a
// per-performance occupancy breakdown.
func GetStatistics(c *fiber.Ctx) error {
	if err := requireStaff(c); err != nil {
		return err
	}

	db := database.DB

	counts := map[string]int64{}
	for name, value := range map[string]any{
		"plays":        &model.Play{},
		"performances": &model.Performance{},
		"reservations": &model.Reservation{},
		"tickets":      &model.Ticket{},
		"users":        &model.User{},
	} {
		var count int64
		if err := db.Model(value).Count(&count).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		counts[name] = count
	}

	var occupancy []occupancyRow
	err := db.Table("performances").
		Select(`performances.id AS performance_id,
			plays.title AS play_title,
			theatre_halls.rows * theatre_halls.seats_in_row AS capacity,
			COUNT(tickets.id) AS tickets_sold,
			CAST(COUNT(tickets.id) AS FLOAT) / (theatre_halls.rows * theatre_halls.seats_in_row) AS occupancy`).
		Joins("JOIN plays ON plays.id = performances.play_id").
		Joins("JOIN theatre_halls ON theatre_halls.id = performances.theatre_hall_id").
		Joins("LEFT JOIN tickets ON tickets.performance_id = performances.id").
		Group("performances.id, plays.title, theatre_halls.rows, theatre_halls.seats_in_row").
		Order("occupancy DESC").
		Scan(&occupancy).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"counts":    counts,
		"occupancy": occupancy,
	})
}

// RunDailyStats lets staff trigger the scheduled daily report on demand.
func RunDailyStats(c *fiber.Ctx) error {
	if err := requireStaff(c); err != nil {
		return err
	}

	helper.LogDailyStats()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"triggered": true})
}
