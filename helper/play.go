package helper

import (
	"strings"
	"theatre_api/model"
	"theatre_api/utils"

	"gorm.io/gorm"
)

// FilterPlays lists plays ordered by title, filtered by a case-insensitive
// title substring and by genre/actor id sets. Filters are ANDed together;
// within a set any match qualifies. Joins over the association tables are
// deduplicated so a play tagged with two requested genres appears once.
func FilterPlays(db *gorm.DB, title string, genreIds, actorIds []uint, limit, page *int) ([]model.Play, int64, error) {
	query := db.Model(&model.Play{}).
		Distinct("plays.*").
		Preload("Actors").
		Preload("Genres").
		Order("plays.title ASC")

	if title != "" {
		pattern := "%" + strings.ToLower(title) + "%"
		query = query.Where("LOWER(plays.title) LIKE ?", pattern)
	}
	if len(genreIds) > 0 {
		query = query.
			Joins("JOIN play_genres ON play_genres.play_id = plays.id").
			Where("play_genres.genre_id IN ?", genreIds)
	}
	if len(actorIds) > 0 {
		query = query.
			Joins("JOIN play_actors ON play_actors.play_id = plays.id").
			Where("play_actors.actor_id IN ?", actorIds)
	}

	var totalCount int64
	if err := query.Session(&gorm.Session{}).Distinct("plays.id").Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplyPagination(query, limit, page)

	var plays []model.Play
	if err := query.Find(&plays).Error; err != nil {
		return nil, 0, err
	}
	return plays, totalCount, nil
}

// PlayToListResponse collapses actors to full names and genres to names for
// the list serialization shape.
func PlayToListResponse(play model.Play) model.PlayListResponse {
	actors := make([]string, 0, len(play.Actors))
	for _, actor := range play.Actors {
		actors = append(actors, actor.FullName())
	}
	genres := make([]string, 0, len(play.Genres))
	for _, genre := range play.Genres {
		genres = append(genres, genre.Name)
	}
	return model.PlayListResponse{
		ID:       play.ID,
		Title:    play.Title,
		Actors:   actors,
		Genres:   genres,
		ImageUrl: play.ImageUrl,
	}
}
