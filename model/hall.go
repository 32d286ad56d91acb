package model

type TheatreHall struct {
	DTO
	Name       string `gorm:"not null" validate:"required,max=255" json:"name"`
	Rows       int    `gorm:"not null" validate:"required,min=1" json:"rows"`
	SeatsInRow int    `gorm:"not null" validate:"required,min=1" json:"seatsInRow"`
}

func (h TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type CreateTheatreHallInput struct {
	Name       string `json:"name" validate:"required,max=255"`
	Rows       int    `json:"rows" validate:"required,min=1"`
	SeatsInRow int    `json:"seatsInRow" validate:"required,min=1"`
}

type TheatreHallResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seatsInRow"`
	Capacity   int    `json:"capacity"`
}

func (h TheatreHall) ToResponse() TheatreHallResponse {
	return TheatreHallResponse{
		ID:         h.ID,
		Name:       h.Name,
		Rows:       h.Rows,
		SeatsInRow: h.SeatsInRow,
		Capacity:   h.Capacity(),
	}
}
