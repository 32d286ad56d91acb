package helper

import (
	"errors"
	"strings"
	"theatre_api/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrEmptyReservation rejects batches with no tickets; a reservation without
// tickets would never be usable.
var ErrEmptyReservation = errors.New("a reservation must contain at least one ticket")

func newTicketCode() string {
	return "TKT-" + strings.ToUpper(uuid.New().String()[:10])
}

// CreateReservation materializes a reservation and its tickets as one
// all-or-nothing unit. Every ticket request is validated against the hall
// grid of its performance, against the other requests in the batch and
// against committed tickets. The composite unique index on tickets backstops
// the check: a concurrent writer that commits the same seat between the
// check and the insert turns this transaction into a SeatTakenError instead
// of a double booking.
func CreateReservation(db *gorm.DB, userId uint, input model.CreateReservationInput) (*model.Reservation, error) {
	if len(input.Tickets) == 0 {
		return nil, ErrEmptyReservation
	}

	type seatKey struct {
		performanceId uint
		row, seat     int
	}

	var reservation model.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		seen := make(map[seatKey]bool, len(input.Tickets))
		halls := make(map[uint]model.TheatreHall)

		for _, req := range input.Tickets {
			hall, ok := halls[req.PerformanceId]
			if !ok {
				var performance model.Performance
				if err := tx.Preload("TheatreHall").First(&performance, req.PerformanceId).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return &model.UnknownReferenceError{Entity: "performance", ID: req.PerformanceId}
					}
					return err
				}
				hall = performance.TheatreHall
				halls[req.PerformanceId] = hall
			}

			if err := model.ValidateSeat(req.Row, req.Seat, hall); err != nil {
				return err
			}

			key := seatKey{req.PerformanceId, req.Row, req.Seat}
			if seen[key] {
				return &model.SeatTakenError{PerformanceId: req.PerformanceId, Row: req.Row, Seat: req.Seat}
			}
			seen[key] = true

			var count int64
			if err := tx.Model(&model.Ticket{}).
				Where(`performance_id = ? AND "row" = ? AND seat = ?`, req.PerformanceId, req.Row, req.Seat).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return &model.SeatTakenError{PerformanceId: req.PerformanceId, Row: req.Row, Seat: req.Seat}
			}
		}

		reservation = model.Reservation{UserId: userId}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		tickets := make([]model.Ticket, 0, len(input.Tickets))
		for _, req := range input.Tickets {
			tickets = append(tickets, model.Ticket{
				Row:           req.Row,
				Seat:          req.Seat,
				PerformanceId: req.PerformanceId,
				ReservationId: reservation.ID,
				TicketCode:    newTicketCode(),
			})
		}
		if err := tx.Create(&tickets).Error; err != nil {
			return err
		}
		reservation.Tickets = tickets
		return nil
	})

	if err != nil {
		if isDuplicateKey(err) {
			// Lost a race against a concurrent writer. The transaction is
			// already rolled back; identify the seat that got taken.
			return nil, takenSeatInBatch(db, input)
		}
		return nil, err
	}
	return &reservation, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}

func takenSeatInBatch(db *gorm.DB, input model.CreateReservationInput) error {
	for _, req := range input.Tickets {
		var count int64
		if err := db.Model(&model.Ticket{}).
			Where(`performance_id = ? AND "row" = ? AND seat = ?`, req.PerformanceId, req.Row, req.Seat).
			Count(&count).Error; err != nil {
			// Skipping here could blame the wrong seat; surface the failure.
			return err
		}
		if count > 0 {
			return &model.SeatTakenError{PerformanceId: req.PerformanceId, Row: req.Row, Seat: req.Seat}
		}
	}
	first := input.Tickets[0]
	return &model.SeatTakenError{PerformanceId: first.PerformanceId, Row: first.Row, Seat: first.Seat}
}
