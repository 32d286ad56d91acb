package helper

import (
	"testing"
	"theatre_api/database"
	"theatre_api/model"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. The pool is pinned to one
// connection so the memory database is shared by every query and concurrent
// transactions serialize the way a single-writer sqlite file would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// seedPerformance creates a play, a hall with the given grid and one
// performance in it.
func seedPerformance(t *testing.T, db *gorm.DB, rows, seatsInRow int) model.Performance {
	t.Helper()

	play := model.Play{Title: "Hamlet", Description: "The tragedy of the Prince of Denmark."}
	require.NoError(t, db.Create(&play).Error)

	hall := model.TheatreHall{Name: "Main Stage", Rows: rows, SeatsInRow: seatsInRow}
	require.NoError(t, db.Create(&hall).Error)

	performance := model.Performance{
		PlayId:        play.ID,
		TheatreHallId: hall.ID,
		ShowTime:      time.Date(2026, 10, 1, 19, 30, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&performance).Error)

	performance.Play = play
	performance.TheatreHall = hall
	return performance
}

func seedUser(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()

	user := model.User{Email: email, Password: "not-a-real-hash"}
	require.NoError(t, db.Create(&user).Error)
	return user
}
