package handler

import (
	"errors"
	"theatre_api/constants"
	"theatre_api/database"
	"theatre_api/helper"
	"theatre_api/model"
	"theatre_api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func performanceToListResponse(performance model.Performance, available int64) model.PerformanceListResponse {
	return model.PerformanceListResponse{
		ID:                  performance.ID,
		PlayTitle:           performance.Play.Title,
		PlayImage:           performance.Play.ImageUrl,
		TheatreHallName:     performance.TheatreHall.Name,
		TheatreHallCapacity: performance.TheatreHall.Capacity(),
		ShowTime:            performance.ShowTime,
		TicketsAvailable:    available,
	}
}

func GetAllPerformances(c *fiber.Ctx) error {
	var input model.FilterPerformanceInput
	if err := c.QueryParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters", err)
	}

	performances, err := helper.FilterPerformances(database.DB, input.Date, input.Play)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date filter, expected YYYY-MM-DD", err)
	}

	ids := make([]uint, 0, len(performances))
	for _, performance := range performances {
		ids = append(ids, performance.ID)
	}
	available, err := helper.AvailableSeats(database.DB, ids)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]model.PerformanceListResponse, 0, len(performances))
	for _, performance := range performances {
		rows = append(rows, performanceToListResponse(performance, available[performance.ID]))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

func GetPerformanceById(c *fiber.Ctx) error {
	performanceId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var performance model.Performance
	err := database.DB.
		Preload("Play.Actors").
		Preload("Play.Genres").
		Preload("TheatreHall").
		First(&performance, performanceId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	takenSeats, err := helper.TakenSeats(database.DB, performance.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.PerformanceDetailResponse{
		ID:          performance.ID,
		Play:        helper.PlayToListResponse(performance.Play),
		TheatreHall: performance.TheatreHall.ToResponse(),
		ShowTime:    performance.ShowTime,
		TakenSeats:  takenSeats,
	})
}

func CreatePerformance(c *fiber.Ctx) error {
	if err := requireStaff(c); err != nil {
		return err
	}

	input, ok := c.Locals("createPerformanceInput").(model.CreatePerformanceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var play model.Play
	if err := db.First(&play, input.PlayId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Play does not exist", err, "playId")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	var hall model.TheatreHall
	if err := db.First(&hall, input.TheatreHallId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Theatre hall does not exist", err, "theatreHallId")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var performance model.Performance
	if err := copier.Copy(&performance, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := db.Create(&performance).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create performance", err)
	}

	performance.Play = play
	performance.TheatreHall = hall
	return utils.SuccessResponse(c, fiber.StatusCreated, performanceToListResponse(performance, int64(hall.Capacity())))
}

func UpdatePerformance(c *fiber.Ctx) error {
	if err := requireStaff(c); err != nil {
		return err
	}

	performanceId, ok := c.Locals("performanceId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input, ok := c.Locals("updatePerformanceInput").(model.UpdatePerformanceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var performance model.Performance
	if err := db.First(&performance, performanceId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.PlayId != nil {
		var play model.Play
		if err := db.First(&play, *input.PlayId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Play does not exist", err, "playId")
		}
		performance.PlayId = *input.PlayId
	}
	if input.TheatreHallId != nil {
		var hall model.TheatreHall
		if err := db.First(&hall, *input.TheatreHallId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Theatre hall does not exist", err, "theatreHallId")
		}
		maxRow, maxSeat, err := helper.TicketBounds(db, performance.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if maxRow > hall.Rows || maxSeat > hall.SeatsInRow {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				"Booked tickets do not fit the requested hall", errors.New("hall smaller than booked seats"), "theatreHallId")
		}
		performance.TheatreHallId = *input.TheatreHallId
	}
	if input.ShowTime != nil {
		performance.ShowTime = *input.ShowTime
	}

	if err := db.Save(&performance).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update performance", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, performance)
}

func DeletePerformance(c *fiber.Ctx) error {
	if err := requireStaff(c); err != nil {
		return err
	}

	performanceId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var performance model.Performance
	if err := db.First(&performance, performanceId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&performance).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete performance", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": performance.ID})
}
