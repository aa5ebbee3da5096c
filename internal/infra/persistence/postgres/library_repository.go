package postgres

import (
	"context"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// libraryRepository implements the repository.LibraryRepository interface.
type libraryRepository struct {
	db *gorm.DB
}

// NewLibraryRepository is the constructor for libraryRepository.
func NewLibraryRepository(db *gorm.DB) repository.LibraryRepository {
	return &libraryRepository{
		db: db,
	}
}

// CreateEntry persists a new library entry.
func (repo *libraryRepository) CreateEntry(ctx context.Context, entry *entity.LibraryEntry) error {
	entryM := fromLibraryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Two unique indexes live on this table; name which one fired.
			if violatesConstraint(err, "activation_code") {
				return repository.ErrDuplicateActivationCode
			}

			return repository.ErrDuplicateLibraryEntry
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WithDetails("unknown user or game reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create library entry")
	}

	entry.ID = entryM.ID

	return nil
}

// FindEntryByID retrieves an entry by its unique ID.
func (repo *libraryRepository) FindEntryByID(ctx context.Context, id int64) (*entity.LibraryEntry, error) {
	var entryM model.LibraryModel

	if err := repo.db.WithContext(ctx).
		Preload("Game").
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLibraryEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find library entry by ID")
	}

	return toLibraryDomain(&entryM), nil
}

// FindEntryByUserAndGame retrieves the entry for the (user, game) pair.
func (repo *libraryRepository) FindEntryByUserAndGame(ctx context.Context, userID, gameID int64) (*entity.LibraryEntry, error) {
	var entryM model.LibraryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLibraryEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find library entry by user and game")
	}

	return toLibraryDomain(&entryM), nil
}

// UpdateEntry persists the entry's purchase date and activation code.
func (repo *libraryRepository) UpdateEntry(ctx context.Context, entry *entity.LibraryEntry) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LibraryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"purchase_date":   entry.PurchaseDate,
			"activation_code": entry.ActivationCode,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateActivationCode
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update library entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLibraryEntryNotFound
	}

	return nil
}

// DeleteEntry removes an entry by its unique ID.
func (repo *libraryRepository) DeleteEntry(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LibraryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete library entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLibraryEntryNotFound
	}

	return nil
}

// ListEntriesByUser retrieves all entries for a user with game titles
// resolved, most recently purchased first and wishlisted entries last.
func (repo *libraryRepository) ListEntriesByUser(ctx context.Context, userID int64) ([]*entity.LibraryEntry, error) {
	var entryModels []*model.LibraryModel

	if err := repo.db.WithContext(ctx).
		Preload("Game").
		Where("user_id = ?", userID).
		Order("purchase_date DESC NULLS LAST, id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list library entries by user")
	}

	entries := make([]*entity.LibraryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toLibraryDomain(entryM))
	}

	return entries, nil
}

// StatusesByUser returns the library status per game for a user.
func (repo *libraryRepository) StatusesByUser(ctx context.Context, userID int64) (map[int64]entity.LibraryStatus, error) {
	var entryModels []*model.LibraryModel

	if err := repo.db.WithContext(ctx).
		Select("game_id", "purchase_date", "activation_code").
		Where("user_id = ?", userID).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load library statuses by user")
	}

	statuses := make(map[int64]entity.LibraryStatus, len(entryModels))
	for _, entryM := range entryModels {
		statuses[entryM.GameID] = toLibraryDomain(entryM).Status()
	}

	return statuses, nil
}

// ActivationCodeExists reports whether the code has already been issued.
func (repo *libraryRepository) ActivationCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LibraryModel{}).
		Where("activation_code = ?", code).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check activation code existence")
	}

	return count > 0, nil
}

// toLibraryDomain converts a persistence model to a domain entity.
func toLibraryDomain(entryM *model.LibraryModel) *entity.LibraryEntry {
	entry := &entity.LibraryEntry{
		ID:             entryM.ID,
		UserID:         entryM.UserID,
		GameID:         entryM.GameID,
		PurchaseDate:   entryM.PurchaseDate,
		ActivationCode: entryM.ActivationCode,
	}
	if entryM.Game != nil {
		entry.GameTitle = entryM.Game.Title
	}

	return entry
}

// fromLibraryDomain converts a domain entity to a persistence model.
func fromLibraryDomain(entry *entity.LibraryEntry) *model.LibraryModel {
	return &model.LibraryModel{
		ID:             entry.ID,
		UserID:         entry.UserID,
		GameID:         entry.GameID,
		PurchaseDate:   entry.PurchaseDate,
		ActivationCode: entry.ActivationCode,
	}
}
