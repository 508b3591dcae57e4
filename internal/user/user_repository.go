package user

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *database.User) error
	GetUserByID(ctx context.Context, userID uint64) (*database.User, error)
	GetUserByUsername(ctx context.Context, username string) (*database.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []uint64) ([]*database.User, error)
	CheckUserExists(ctx context.Context, username string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *database.User) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(user).Error, "create user")
}

// GetUserByID returns gorm.ErrRecordNotFound unwrapped so callers can test for it.
func (r *userRepository) GetUserByID(ctx context.Context, userID uint64) (*database.User, error) {
	var user database.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*database.User, error) {
	var user database.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUsersByIDs(ctx context.Context, userIDs []uint64) ([]*database.User, error) {
	if len(userIDs) == 0 {
		return []*database.User{}, nil
	}
	var users []*database.User
	err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Order("username ASC").Find(&users).Error
	return users, errors.Wrap(err, "list users")
}

func (r *userRepository) CheckUserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&database.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, errors.Wrap(err, "count users")
}
