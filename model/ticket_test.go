package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeat(t *testing.T) {
	hall := TheatreHall{Name: "Main Stage", Rows: 5, SeatsInRow: 8}

	tests := []struct {
		name     string
		row      int
		seat     int
		wantAxis string
	}{
		{"first seat", 1, 1, ""},
		{"last seat", 5, 8, ""},
		{"middle", 3, 4, ""},
		{"seat zero", 3, 0, AxisSeat},
		{"seat beyond row width", 3, 9, AxisSeat},
		{"row zero", 0, 4, AxisRow},
		{"row beyond hall", 6, 4, AxisRow},
		{"negative row", -1, 4, AxisRow},
		{"negative seat", 3, -2, AxisSeat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeat(tt.row, tt.seat, hall)
			if tt.wantAxis == "" {
				assert.NoError(t, err)
				return
			}
			var outOfRange *SeatOutOfRangeError
			require.ErrorAs(t, err, &outOfRange)
			assert.Equal(t, tt.wantAxis, outOfRange.Axis)
			assert.Equal(t, 1, outOfRange.Min)
		})
	}
}

func TestValidateSeatChecksSeatAxisFirst(t *testing.T) {
	hall := TheatreHall{Name: "Main Stage", Rows: 5, SeatsInRow: 8}

	// Both coordinates out of range: the seat axis wins.
	err := ValidateSeat(99, 99, hall)
	var outOfRange *SeatOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, AxisSeat, outOfRange.Axis)
	assert.Equal(t, 8, outOfRange.Max)
}

func TestSeatErrorMessages(t *testing.T) {
	assert.Equal(t, "seat must be in range [1, 8]",
		(&SeatOutOfRangeError{Axis: AxisSeat, Min: 1, Max: 8}).Error())
	assert.Equal(t, "row must be in range [1, 5]",
		(&SeatOutOfRangeError{Axis: AxisRow, Min: 1, Max: 5}).Error())
	assert.Equal(t, "seat (row 2, seat 3) is already taken for performance 7",
		(&SeatTakenError{PerformanceId: 7, Row: 2, Seat: 3}).Error())
	assert.Equal(t, "performance 9 does not exist",
		(&UnknownReferenceError{Entity: "performance", ID: 9}).Error())
}

func TestTheatreHallCapacity(t *testing.T) {
	assert.Equal(t, 40, TheatreHall{Rows: 5, SeatsInRow: 8}.Capacity())
	assert.Equal(t, 1, TheatreHall{Rows: 1, SeatsInRow: 1}.Capacity())
}
