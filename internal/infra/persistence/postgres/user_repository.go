package postgres

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a user by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// toUserDomain converts a persistence model to a domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:        userM.ID,
		FullName:  userM.FullName,
		Email:     userM.Email,
		IsActive:  userM.IsActive,
		CreatedAt: userM.CreatedAt,
	}
}
