package model

import "time"

type Reservation struct {
	DTO
	UserId uint `gorm:"not null;index" json:"userId"`

	User    User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
	Tickets []Ticket `gorm:"foreignKey:ReservationId;constraint:OnDelete:CASCADE" json:"tickets"`
}

// TicketRequest is one desired seat inside a reservation batch.
type TicketRequest struct {
	PerformanceId uint `json:"performanceId" validate:"required"`
	Row           int  `json:"row" validate:"required,min=1"`
	Seat          int  `json:"seat" validate:"required,min=1"`
}

type CreateReservationInput struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

type FilterReservationInput struct {
	Pagination
}

type TicketResponse struct {
	ID          uint                    `json:"id"`
	Row         int                     `json:"row"`
	Seat        int                     `json:"seat"`
	TicketCode  string                  `json:"ticketCode"`
	Performance PerformanceListResponse `json:"performance"`
}

type ReservationListResponse struct {
	ID        uint             `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Tickets   []TicketResponse `json:"tickets"`
}
