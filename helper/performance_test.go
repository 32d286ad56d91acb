package helper

import (
	"testing"
	"theatre_api/model"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableSeatsDerivedFromTickets(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)
	user := seedUser(t, db, "alice@example.com")

	_, err := CreateReservation(db, user.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{
			{PerformanceId: performance.ID, Row: 1, Seat: 1},
			{PerformanceId: performance.ID, Row: 1, Seat: 2},
			{PerformanceId: performance.ID, Row: 2, Seat: 5},
		},
	})
	require.NoError(t, err)

	available, err := AvailableSeats(db, []uint{performance.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 22, available[performance.ID], "25 seats minus 3 tickets")
}

func TestAvailableSeatsEmptyPerformance(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 4, 6)

	available, err := AvailableSeats(db, []uint{performance.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 24, available[performance.ID])
}

func TestAvailableSeatsNoIds(t *testing.T) {
	db := newTestDB(t)

	available, err := AvailableSeats(db, nil)
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestFilterPerformancesByDate(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)

	evening := model.Performance{
		PlayId:        performance.PlayId,
		TheatreHallId: performance.TheatreHallId,
		ShowTime:      time.Date(2026, 10, 2, 23, 45, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&evening).Error)

	// Seeded show is on 2026-10-01; the second one late on 2026-10-02.
	got, err := FilterPerformances(db, "2026-10-02", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, evening.ID, got[0].ID)

	got, err = FilterPerformances(db, "2026-10-03", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterPerformancesByPlay(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)

	other := model.Play{Title: "Macbeth", Description: "The Scottish play."}
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&model.Performance{
		PlayId:        other.ID,
		TheatreHallId: performance.TheatreHallId,
		ShowTime:      time.Date(2026, 10, 5, 20, 0, 0, 0, time.UTC),
	}).Error)

	got, err := FilterPerformances(db, "", performance.PlayId)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, performance.ID, got[0].ID)
}

func TestFilterPerformancesBadDate(t *testing.T) {
	db := newTestDB(t)

	_, err := FilterPerformances(db, "02-10-2026", 0)
	assert.Error(t, err)
}

func TestTicketBounds(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)
	user := seedUser(t, db, "alice@example.com")

	maxRow, maxSeat, err := TicketBounds(db, performance.ID)
	require.NoError(t, err)
	assert.Zero(t, maxRow)
	assert.Zero(t, maxSeat)

	_, err = CreateReservation(db, user.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{
			{PerformanceId: performance.ID, Row: 4, Seat: 2},
			{PerformanceId: performance.ID, Row: 2, Seat: 5},
		},
	})
	require.NoError(t, err)

	maxRow, maxSeat, err = TicketBounds(db, performance.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, maxRow)
	assert.Equal(t, 5, maxSeat)
}

func TestTakenSeatsOrdered(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)
	user := seedUser(t, db, "alice@example.com")

	_, err := CreateReservation(db, user.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{
			{PerformanceId: performance.ID, Row: 3, Seat: 2},
			{PerformanceId: performance.ID, Row: 1, Seat: 4},
			{PerformanceId: performance.ID, Row: 3, Seat: 1},
		},
	})
	require.NoError(t, err)

	seats, err := TakenSeats(db, performance.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.SeatRef{
		{Row: 1, Seat: 4},
		{Row: 3, Seat: 1},
		{Row: 3, Seat: 2},
	}, seats)
}
