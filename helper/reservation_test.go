package helper

import (
	"errors"
	"sync"
	"testing"
	"theatre_api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservationHappyPath(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)
	user := seedUser(t, db, "alice@example.com")

	input := model.CreateReservationInput{Tickets: []model.TicketRequest{
		{PerformanceId: performance.ID, Row: 1, Seat: 1},
		{PerformanceId: performance.ID, Row: 1, Seat: 2},
		{PerformanceId: performance.ID, Row: 2, Seat: 1},
	}}

	reservation, err := CreateReservation(db, user.ID, input)
	require.NoError(t, err)
	require.NotNil(t, reservation)
	assert.Equal(t, user.ID, reservation.UserId)
	assert.Len(t, reservation.Tickets, 3)
	for _, ticket := range reservation.Tickets {
		assert.NotEmpty(t, ticket.TicketCode)
		assert.Equal(t, reservation.ID, ticket.ReservationId)
	}

	var count int64
	require.NoError(t, db.Model(&model.Ticket{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestCreateReservationEmptyBatch(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")

	_, err := CreateReservation(db, user.ID, model.CreateReservationInput{})
	assert.ErrorIs(t, err, ErrEmptyReservation)
}

func TestCreateReservationUnknownPerformance(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")

	_, err := CreateReservation(db, user.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{{PerformanceId: 999, Row: 1, Seat: 1}},
	})

	var unknown *model.UnknownReferenceError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "performance", unknown.Entity)
	assert.EqualValues(t, 999, unknown.ID)
}

func TestCreateReservationRowOutOfRange(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)
	user := seedUser(t, db, "alice@example.com")

	_, err := CreateReservation(db, user.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{{PerformanceId: performance.ID, Row: 6, Seat: 3}},
	})

	var outOfRange *model.SeatOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, model.AxisRow, outOfRange.Axis)
	assert.Equal(t, 1, outOfRange.Min)
	assert.Equal(t, 5, outOfRange.Max)
}

func TestCreateReservationDuplicateSeatInBatch(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)
	user := seedUser(t, db, "alice@example.com")

	_, err := CreateReservation(db, user.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{
			{PerformanceId: performance.ID, Row: 2, Seat: 2},
			{PerformanceId: performance.ID, Row: 2, Seat: 2},
		},
	})

	var taken *model.SeatTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, 2, taken.Row)
	assert.Equal(t, 2, taken.Seat)

	// Nothing persisted from the rejected batch.
	var count int64
	require.NoError(t, db.Model(&model.Ticket{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateReservationAllOrNothing(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	_, err := CreateReservation(db, alice.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{{PerformanceId: performance.ID, Row: 3, Seat: 3}},
	})
	require.NoError(t, err)

	// Bob wants two free seats and one taken seat; the whole batch must fail.
	_, err = CreateReservation(db, bob.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{
			{PerformanceId: performance.ID, Row: 1, Seat: 1},
			{PerformanceId: performance.ID, Row: 3, Seat: 3},
			{PerformanceId: performance.ID, Row: 4, Seat: 4},
		},
	})

	var taken *model.SeatTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, 3, taken.Row)
	assert.Equal(t, 3, taken.Seat)

	var tickets int64
	require.NoError(t, db.Model(&model.Ticket{}).Count(&tickets).Error)
	assert.EqualValues(t, 1, tickets, "the losing batch must not persist any ticket")

	var reservations int64
	require.NoError(t, db.Model(&model.Reservation{}).Count(&reservations).Error)
	assert.EqualValues(t, 1, reservations)
}

func TestCreateReservationFreeSeatAfterConflicts(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	_, err := CreateReservation(db, alice.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{
			{PerformanceId: performance.ID, Row: 1, Seat: 1},
			{PerformanceId: performance.ID, Row: 1, Seat: 2},
		},
	})
	require.NoError(t, err)

	_, err = CreateReservation(db, bob.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{{PerformanceId: performance.ID, Row: 1, Seat: 1}},
	})
	var taken *model.SeatTakenError
	require.ErrorAs(t, err, &taken)

	reservation, err := CreateReservation(db, bob.ID, model.CreateReservationInput{
		Tickets: []model.TicketRequest{{PerformanceId: performance.ID, Row: 1, Seat: 3}},
	})
	require.NoError(t, err)
	assert.Len(t, reservation.Tickets, 1)
}

func TestCreateReservationConcurrentSameSeat(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)
	user := seedUser(t, db, "alice@example.com")

	const writers = 8
	input := model.CreateReservationInput{
		Tickets: []model.TicketRequest{{PerformanceId: performance.ID, Row: 1, Seat: 1}},
	}

	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = CreateReservation(db, user.ID, input)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var taken *model.SeatTakenError
		require.ErrorAs(t, err, &taken)
	}
	assert.Equal(t, 1, winners, "exactly one writer may claim the seat")

	var count int64
	require.NoError(t, db.Model(&model.Ticket{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTakenSeatInBatchPropagatesQueryErrors(t *testing.T) {
	db := newTestDB(t)
	performance := seedPerformance(t, db, 5, 5)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = takenSeatInBatch(db, model.CreateReservationInput{
		Tickets: []model.TicketRequest{{PerformanceId: performance.ID, Row: 1, Seat: 1}},
	})
	require.Error(t, err)
	var taken *model.SeatTakenError
	assert.False(t, errors.As(err, &taken), "a query failure must not be reported as a taken seat")
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(errTest("UNIQUE constraint failed: tickets.row")))
	assert.True(t, isDuplicateKey(errTest(`duplicate key value violates unique constraint "idx_tickets_performance_row_seat"`)))
	assert.False(t, isDuplicateKey(errTest("connection refused")))
}

type errTest string

func (e errTest) Error() string { return string(e) }
