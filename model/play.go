package model

import "fmt"

type Play struct {
	DTO
	Title       string  `gorm:"not null;index" validate:"required,max=115" json:"title"`
	Description string  `gorm:"not null;type:text" validate:"required" json:"description"`
	ImageUrl    *string `gorm:"type:varchar(255)" json:"imageUrl"`
	ImagePublicId *string `json:"-"`

	Actors []Actor `gorm:"many2many:play_actors;" json:"actors"`
	Genres []Genre `gorm:"many2many:play_genres;" json:"genres"`
}

type Actor struct {
	DTO
	FirstName string `gorm:"not null" validate:"required,max=115" json:"firstName"`
	LastName  string `gorm:"not null" validate:"required,max=115" json:"lastName"`

	Plays []Play `gorm:"many2many:play_actors;" json:"-"`
}

func (a Actor) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

type Genre struct {
	DTO
	Name string `gorm:"not null;size:60" validate:"required,max=60" json:"name"`

	Plays []Play `gorm:"many2many:play_genres;" json:"-"`
}

type CreatePlayInput struct {
	Title       string `json:"title" validate:"required,max=115"`
	Description string `json:"description" validate:"required"`
	ActorIds    []uint `json:"actorIds" validate:"omitempty,dive,required"`
	GenreIds    []uint `json:"genreIds" validate:"omitempty,dive,required"`
}

type FilterPlayInput struct {
	Pagination
	Title  string `query:"title"`
	Genres string `query:"genres"`
	Actors string `query:"actors"`
}

// PlayListResponse is the list-shape serialization: actors and genres
// collapsed to display strings.
type PlayListResponse struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Actors   []string `json:"actors"`
	Genres   []string `json:"genres"`
	ImageUrl *string  `json:"imageUrl"`
}

type ActorResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}
