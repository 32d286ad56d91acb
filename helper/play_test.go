package helper

import (
	"testing"
	"theatre_api/model"
	"theatre_api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB) (drama, comedy model.Genre, smith, jones model.Actor) {
	t.Helper()

	drama = model.Genre{Name: "Drama"}
	comedy = model.Genre{Name: "Comedy"}
	require.NoError(t, db.Create(&drama).Error)
	require.NoError(t, db.Create(&comedy).Error)

	smith = model.Actor{FirstName: "Anna", LastName: "Smith"}
	jones = model.Actor{FirstName: "Ben", LastName: "Jones"}
	require.NoError(t, db.Create(&smith).Error)
	require.NoError(t, db.Create(&jones).Error)
	return
}

func TestFilterPlaysByTitleCaseInsensitive(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&model.Play{Title: "Hamlet", Description: "d"}).Error)
	require.NoError(t, db.Create(&model.Play{Title: "The Hamlet Machine", Description: "d"}).Error)
	require.NoError(t, db.Create(&model.Play{Title: "Macbeth", Description: "d"}).Error)

	plays, totalCount, err := FilterPlays(db, "hAmLeT", nil, nil, nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totalCount)
	require.Len(t, plays, 2)
	assert.Equal(t, "Hamlet", plays[0].Title)
	assert.Equal(t, "The Hamlet Machine", plays[1].Title)
}

func TestFilterPlaysGenreUnionDeduplicates(t *testing.T) {
	db := newTestDB(t)
	drama, comedy, _, _ := seedCatalog(t, db)

	both := model.Play{Title: "Both Genres", Description: "d", Genres: []model.Genre{drama, comedy}}
	onlyDrama := model.Play{Title: "Only Drama", Description: "d", Genres: []model.Genre{drama}}
	neither := model.Play{Title: "Neither", Description: "d"}
	require.NoError(t, db.Create(&both).Error)
	require.NoError(t, db.Create(&onlyDrama).Error)
	require.NoError(t, db.Create(&neither).Error)

	// A play matching two requested genres must appear exactly once.
	plays, totalCount, err := FilterPlays(db, "", []uint{drama.ID, comedy.ID}, nil, nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totalCount)
	require.Len(t, plays, 2)
	assert.Equal(t, "Both Genres", plays[0].Title)
	assert.Equal(t, "Only Drama", plays[1].Title)
}

func TestFilterPlaysFiltersAreANDed(t *testing.T) {
	db := newTestDB(t)
	drama, _, smith, jones := seedCatalog(t, db)

	match := model.Play{
		Title:       "Hamlet",
		Description: "d",
		Genres:      []model.Genre{drama},
		Actors:      []model.Actor{smith},
	}
	wrongActor := model.Play{
		Title:       "Hamlet Reimagined",
		Description: "d",
		Genres:      []model.Genre{drama},
		Actors:      []model.Actor{jones},
	}
	require.NoError(t, db.Create(&match).Error)
	require.NoError(t, db.Create(&wrongActor).Error)

	plays, totalCount, err := FilterPlays(db, "hamlet", []uint{drama.ID}, []uint{smith.ID}, nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, totalCount)
	require.Len(t, plays, 1)
	assert.Equal(t, "Hamlet", plays[0].Title)
}

func TestFilterPlaysPagination(t *testing.T) {
	db := newTestDB(t)

	titles := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	for _, title := range titles {
		require.NoError(t, db.Create(&model.Play{Title: title, Description: "d"}).Error)
	}

	plays, totalCount, err := FilterPlays(db, "", nil, nil, utils.Ptr(2), utils.Ptr(2))
	require.NoError(t, err)
	assert.EqualValues(t, 5, totalCount)
	require.Len(t, plays, 2)
	// Ordered by title: Alpha, Beta | Delta, Epsilon | Gamma.
	assert.Equal(t, "Delta", plays[0].Title)
	assert.Equal(t, "Epsilon", plays[1].Title)
}

func TestPlayToListResponse(t *testing.T) {
	play := model.Play{
		Title: "Hamlet",
		Actors: []model.Actor{
			{FirstName: "Anna", LastName: "Smith"},
			{FirstName: "Ben", LastName: "Jones"},
		},
		Genres: []model.Genre{{Name: "Drama"}},
	}

	resp := PlayToListResponse(play)
	assert.Equal(t, []string{"Anna Smith", "Ben Jones"}, resp.Actors)
	assert.Equal(t, []string{"Drama"}, resp.Genres)
}
