package helper

import (
	"log"
	"theatre_api/database"
	"theatre_api/model"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var statsScheduler gocron.Scheduler

// LogDailyStats logs reservation and ticket counts for the previous day.
func LogDailyStats() {
	db := database.DB
	dayEnd := time.Now().UTC().Truncate(24 * time.Hour)
	dayStart := dayEnd.AddDate(0, 0, -1)

	var reservations int64
	if err := db.Model(&model.Reservation{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&reservations).Error; err != nil {
		log.Printf("stats: failed to count reservations: %v", err)
		return
	}

	var tickets int64
	if err := db.Model(&model.Ticket{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&tickets).Error; err != nil {
		log.Printf("stats: failed to count tickets: %v", err)
		return
	}

	log.Printf("stats %s: %d reservations, %d tickets", dayStart.Format("2006-01-02"), reservations, tickets)
}

func StartStatsScheduler() {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		log.Fatal(err)
	}

	statsScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(LogDailyStats),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("stats scheduler started (00:05 UTC)")
}

func StopStatsScheduler() {
	if statsScheduler != nil {
		if err := statsScheduler.Shutdown(); err != nil {
			log.Printf("stats scheduler shutdown: %v", err)
		}
	}
}
