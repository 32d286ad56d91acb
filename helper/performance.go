package helper

import (
	"theatre_api/model"
	"time"

	"gorm.io/gorm"
)

// AvailableSeats computes hall capacity minus booked tickets for every given
// performance in one grouped query over the hall join.
func AvailableSeats(db *gorm.DB, performanceIds []uint) (map[uint]int64, error) {
	if len(performanceIds) == 0 {
		return map[uint]int64{}, nil
	}

	var rows []struct {
		PerformanceId    uint
		TicketsAvailable int64
	}
	err := db.Table("performances").
		Select("performances.id AS performance_id, theatre_halls.rows * theatre_halls.seats_in_row - COUNT(tickets.id) AS tickets_available").
		Joins("JOIN theatre_halls ON theatre_halls.id = performances.theatre_hall_id").
		Joins("LEFT JOIN tickets ON tickets.performance_id = performances.id").
		Where("performances.id IN ?", performanceIds).
		Group("performances.id, theatre_halls.rows, theatre_halls.seats_in_row").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	available := make(map[uint]int64, len(rows))
	for _, row := range rows {
		available[row.PerformanceId] = row.TicketsAvailable
	}
	return available, nil
}

// FilterPerformances lists performances newest-first, optionally restricted
// to one play and to one calendar date (any time of day within that date).
func FilterPerformances(db *gorm.DB, date string, playId uint) ([]model.Performance, error) {
	query := db.Model(&model.Performance{}).
		Preload("Play").
		Preload("TheatreHall").
		Order("performances.show_time DESC")

	if date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, err
		}
		query = query.Where("performances.show_time >= ? AND performances.show_time < ?", day, day.AddDate(0, 0, 1))
	}
	if playId != 0 {
		query = query.Where("performances.play_id = ?", playId)
	}

	var performances []model.Performance
	if err := query.Find(&performances).Error; err != nil {
		return nil, err
	}
	return performances, nil
}

// TicketBounds returns the highest booked row and seat coordinates of a
// performance, 0/0 when it has no tickets. Used to stop a hall change that
// would strand committed tickets outside the new grid.
func TicketBounds(db *gorm.DB, performanceId uint) (maxRow, maxSeat int, err error) {
	var bounds struct {
		MaxRow  int
		MaxSeat int
	}
	err = db.Model(&model.Ticket{}).
		Select(`COALESCE(MAX("row"), 0) AS max_row, COALESCE(MAX(seat), 0) AS max_seat`).
		Where("performance_id = ?", performanceId).
		Scan(&bounds).Error
	if err != nil {
		return 0, 0, err
	}
	return bounds.MaxRow, bounds.MaxSeat, nil
}

// TakenSeats returns the occupied coordinates of a performance ordered by
// (row, seat).
func TakenSeats(db *gorm.DB, performanceId uint) ([]model.SeatRef, error) {
	seats := make([]model.SeatRef, 0)
	err := db.Model(&model.Ticket{}).
		Select(`tickets.row AS row, tickets.seat AS seat`).
		Where("tickets.performance_id = ?", performanceId).
		Order(`tickets.row, tickets.seat`).
		Scan(&seats).Error
	if err != nil {
		return nil, err
	}
	return seats, nil
}
