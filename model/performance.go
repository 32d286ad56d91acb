package model

import "time"

type Performance struct {
	DTO
	PlayId        uint      `gorm:"not null;index" json:"playId"`
	TheatreHallId uint      `gorm:"not null;index" json:"theatreHallId"`
	ShowTime      time.Time `gorm:"not null;index" validate:"required" json:"showTime"`

	Play        Play        `gorm:"foreignKey:PlayId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"play"`
	TheatreHall TheatreHall `gorm:"foreignKey:TheatreHallId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"theatreHall"`
	Tickets     []Ticket    `gorm:"foreignKey:PerformanceId;constraint:OnDelete:CASCADE" json:"-"`
}

type CreatePerformanceInput struct {
	PlayId        uint      `json:"playId" validate:"required"`
	TheatreHallId uint      `json:"theatreHallId" validate:"required"`
	ShowTime      time.Time `json:"showTime" validate:"required"`
}

type UpdatePerformanceInput struct {
	PlayId        *uint      `json:"playId"`
	TheatreHallId *uint      `json:"theatreHallId"`
	ShowTime      *time.Time `json:"showTime"`
}

type FilterPerformanceInput struct {
	Date string `query:"date"`
	Play uint   `query:"play"`
}

// PerformanceListResponse carries the derived seat availability, recomputed
// on every read.
type PerformanceListResponse struct {
	ID                  uint      `json:"id"`
	PlayTitle           string    `json:"playTitle"`
	PlayImage           *string   `json:"playImage"`
	TheatreHallName     string    `json:"theatreHallName"`
	TheatreHallCapacity int       `json:"theatreHallCapacity"`
	ShowTime            time.Time `json:"showTime"`
	TicketsAvailable    int64     `json:"ticketsAvailable"`
}

type SeatRef struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type PerformanceDetailResponse struct {
	ID          uint                `json:"id"`
	Play        PlayListResponse    `json:"play"`
	TheatreHall TheatreHallResponse `json:"theatreHall"`
	ShowTime    time.Time           `json:"showTime"`
	TakenSeats  []SeatRef           `json:"takenSeats"`
}
