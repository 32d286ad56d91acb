package model

// Ticket binds one seat of one performance to a reservation. The composite
// unique index closes the check-then-create race at the storage layer: a
// concurrent writer hitting the same (performance, row, seat) fails its
// commit instead of double-booking the seat.
type Ticket struct {
	DTO
	Row           int    `gorm:"not null;uniqueIndex:idx_tickets_performance_row_seat" validate:"required,min=1" json:"row"`
	Seat          int    `gorm:"not null;uniqueIndex:idx_tickets_performance_row_seat" validate:"required,min=1" json:"seat"`
	PerformanceId uint   `gorm:"not null;uniqueIndex:idx_tickets_performance_row_seat" json:"performanceId"`
	ReservationId uint   `gorm:"not null;index" json:"reservationId"`
	TicketCode    string `gorm:"size:20;uniqueIndex" json:"ticketCode"`

	Performance Performance `gorm:"foreignKey:PerformanceId;constraint:OnDelete:CASCADE" json:"-"`
	Reservation Reservation `gorm:"foreignKey:ReservationId;constraint:OnDelete:CASCADE" json:"-"`
}

// ValidateSeat checks a seat coordinate against the hall grid. The seat axis
// is checked before the row axis; when both are out of range the error
// reports the seat range.
func ValidateSeat(row, seat int, hall TheatreHall) error {
	if seat < 1 || seat > hall.SeatsInRow {
		return &SeatOutOfRangeError{Axis: AxisSeat, Min: 1, Max: hall.SeatsInRow}
	}
	if row < 1 || row > hall.Rows {
		return &SeatOutOfRangeError{Axis: AxisRow, Min: 1, Max: hall.Rows}
	}
	return nil
}
