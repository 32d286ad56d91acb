package model

import "fmt"

const (
	AxisRow  = "row"
	AxisSeat = "seat"
)

// SeatOutOfRangeError reports a seat coordinate outside the hall grid,
// carrying the violated axis and its valid inclusive range.
type SeatOutOfRangeError struct {
	Axis string
	Min  int
	Max  int
}

func (e *SeatOutOfRangeError) Error() string {
	return fmt.Sprintf("%s must be in range [%d, %d]", e.Axis, e.Min, e.Max)
}

// SeatTakenError reports a seat already claimed for a performance, either by
// a committed ticket or by another request in the same batch.
type SeatTakenError struct {
	PerformanceId uint
	Row           int
	Seat          int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf(
		"seat (row %d, seat %d) is already taken for performance %d",
		e.Row, e.Seat, e.PerformanceId,
	)
}

// UnknownReferenceError reports a referenced record that does not exist.
type UnknownReferenceError struct {
	Entity string
	ID     uint
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}
