package model

type User struct {
	DTO
	Email     string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password  string `gorm:"not null" validate:"required,min=6,max=64" json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsStaff   bool   `gorm:"not null;default:false" json:"isStaff"`

	Reservations []Reservation `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=64"`
	FirstName string `json:"firstName" validate:"omitempty,max=115"`
	LastName  string `json:"lastName" validate:"omitempty,max=115"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsStaff   bool   `json:"isStaff"`
}
