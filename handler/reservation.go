package handler

import (
	"errors"
	"fmt"
	"strings"
	"theatre_api/constants"
	"theatre_api/database"
	"theatre_api/helper"
	"theatre_api/model"
	"theatre_api/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	defaultReservationPageSize = 10
	maxReservationPageSize     = 100
)

func ticketToResponse(ticket model.Ticket, available int64) model.TicketResponse {
	return model.TicketResponse{
		ID:          ticket.ID,
		Row:         ticket.Row,
		Seat:        ticket.Seat,
		TicketCode:  ticket.TicketCode,
		Performance: performanceToListResponse(ticket.Performance, available),
	}
}

func reservationToListResponse(reservation model.Reservation, available map[uint]int64) model.ReservationListResponse {
	tickets := make([]model.TicketResponse, 0, len(reservation.Tickets))
	for _, ticket := range reservation.Tickets {
		tickets = append(tickets, ticketToResponse(ticket, available[ticket.PerformanceId]))
	}
	return model.ReservationListResponse{
		ID:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   tickets,
	}
}

// GetMyReservations lists only the caller's reservations, newest first,
// paginated with a default page size of 10 and a hard cap of 100.
func GetMyReservations(c *fiber.Ctx) error {
	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.AUTHENTICATION_REQUIRED, errors.New("user not found"))
	}

	var input model.FilterReservationInput
	if err := c.QueryParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters", err)
	}

	limit := defaultReservationPageSize
	if input.Limit != nil && *input.Limit > 0 {
		limit = *input.Limit
		if limit > maxReservationPageSize {
			limit = maxReservationPageSize
		}
	}
	page := 1
	if input.Page != nil && *input.Page >= 1 {
		page = *input.Page
	}

	db := database.DB

	var totalCount int64
	if err := db.Model(&model.Reservation{}).Where("user_id = ?", claim.UserId).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var reservations []model.Reservation
	query := db.Where("user_id = ?", claim.UserId).
		Preload("Tickets.Performance.Play").
		Preload("Tickets.Performance.TheatreHall").
		Order("created_at DESC")
	query = utils.ApplyPagination(query, &limit, &page)
	if err := query.Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	performanceIds := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, reservation := range reservations {
		for _, ticket := range reservation.Tickets {
			if !seen[ticket.PerformanceId] {
				seen[ticket.PerformanceId] = true
				performanceIds = append(performanceIds, ticket.PerformanceId)
			}
		}
	}
	available, err := helper.AvailableSeats(db, performanceIds)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]model.ReservationListResponse, 0, len(reservations))
	for _, reservation := range reservations {
		rows = append(rows, reservationToListResponse(reservation, available))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func CreateReservation(c *fiber.Ctx) error {
	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.AUTHENTICATION_REQUIRED, errors.New("user not found"))
	}

	input, ok := c.Locals("createReservationInput").(model.CreateReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	reservation, err := helper.CreateReservation(database.DB, claim.UserId, input)
	if err != nil {
		var outOfRange *model.SeatOutOfRangeError
		var taken *model.SeatTakenError
		var unknown *model.UnknownReferenceError
		switch {
		case errors.Is(err, helper.ErrEmptyReservation):
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "tickets")
		case errors.As(err, &outOfRange):
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, outOfRange.Axis)
		case errors.As(err, &taken):
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, err.Error(), err, "seat")
		case errors.As(err, &unknown):
			return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error(), err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	db := database.DB
	if err := db.
		Preload("Tickets.Performance.Play").
		Preload("Tickets.Performance.TheatreHall").
		First(reservation, reservation.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	performanceIds := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, ticket := range reservation.Tickets {
		if !seen[ticket.PerformanceId] {
			seen[ticket.PerformanceId] = true
			performanceIds = append(performanceIds, ticket.PerformanceId)
		}
	}
	available, err := helper.AvailableSeats(db, performanceIds)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	for _, performanceId := range performanceIds {
		BroadcastPerformance(performanceId)
	}
	sendConfirmation(user.Email, *reservation)

	return utils.SuccessResponse(c, fiber.StatusCreated, reservationToListResponse(*reservation, available))
}

func sendConfirmation(email string, reservation model.Reservation) {
	if len(reservation.Tickets) == 0 {
		return
	}

	seats := make([]string, 0, len(reservation.Tickets))
	codes := make([]string, 0, len(reservation.Tickets))
	for _, ticket := range reservation.Tickets {
		seats = append(seats, fmt.Sprintf("row %d seat %d", ticket.Row, ticket.Seat))
		codes = append(codes, ticket.TicketCode)
	}

	first := reservation.Tickets[0]
	utils.SendReservationConfirmationEmail(email, utils.ReservationConfirmationData{
		ReservationId: reservation.ID,
		PlayTitle:     first.Performance.Play.Title,
		HallName:      first.Performance.TheatreHall.Name,
		ShowTime:      first.Performance.ShowTime.Format("2006-01-02 15:04"),
		Seats:         strings.Join(seats, ", "),
		TicketCodes:   strings.Join(codes, ", "),
	})
}

// GetReservationQR renders the ticket codes of one owned reservation as a PNG
// QR code for entrance scanning.
func GetReservationQR(c *fiber.Ctx) error {
	claim, user, isStaff := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.AUTHENTICATION_REQUIRED, errors.New("user not found"))
	}

	reservationId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var reservation model.Reservation
	if err := database.DB.Preload("Tickets").First(&reservation, reservationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if reservation.UserId != claim.UserId && !isStaff {
		// Hide other users' reservations instead of admitting they exist.
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, errors.New("reservation belongs to another user"))
	}

	codes := make([]string, 0, len(reservation.Tickets))
	for _, ticket := range reservation.Tickets {
		codes = append(codes, ticket.TicketCode)
	}

	png, err := utils.GenerateQRCode(strings.Join(codes, "\n"), 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not generate QR code", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
