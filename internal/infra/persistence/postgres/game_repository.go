package postgres

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gameRepository implements the repository.GameRepository interface.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository is the constructor for gameRepository.
func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &gameRepository{
		db: db,
	}
}

// FindGameByID retrieves a game by its unique ID.
func (repo *gameRepository) FindGameByID(ctx context.Context, id int64) (*entity.Game, error) {
	var gameM model.GameModel

	if err := repo.db.WithContext(ctx).
		Preload("Genre").
		Where("id = ?", id).
		First(&gameM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game by ID")
	}

	return toGameDomain(&gameM), nil
}

// ListGames retrieves games matching the filter, ordered by title.
func (repo *gameRepository) ListGames(ctx context.Context, filter repository.GameFilter) ([]*entity.Game, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Preload("Genre")

	if filter.SearchTerm != "" {
		query = query.Where("title ILIKE ?", "%"+filter.SearchTerm+"%")
	}
	if filter.GenreID != nil {
		query = query.Where("genre_id = ?", *filter.GenreID)
	}
	if filter.FreeOnly {
		query = query.Where("price = 0")
	} else {
		if filter.MinPrice != nil {
			query = query.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			query = query.Where("price <= ?", *filter.MaxPrice)
		}
	}

	var gameModels []*model.GameModel
	if err := query.Order("title ASC").Find(&gameModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	games := make([]*entity.Game, 0, len(gameModels))
	for _, gameM := range gameModels {
		games = append(games, toGameDomain(gameM))
	}

	return games, nil
}

// toGameDomain converts a persistence model to a domain entity.
func toGameDomain(gameM *model.GameModel) *entity.Game {
	game := &entity.Game{
		ID:          gameM.ID,
		Title:       gameM.Title,
		GenreID:     gameM.GenreID,
		Price:       gameM.Price,
		Rating:      gameM.Rating,
		ReleaseDate: gameM.ReleaseDate,
		IsAvailable: gameM.IsAvailable,
	}
	if gameM.Genre != nil {
		game.GenreName = gameM.Genre.Name
	}

	return game
}
