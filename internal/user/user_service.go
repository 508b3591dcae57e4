package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/apperr"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
)

// TokenIssuer is satisfied by *common.TokenManager.
type TokenIssuer interface {
	GenerateToken(userID uint64, username string) (string, error)
	GenerateSocketToken(userID uint64, username, email string) (string, error)
}

type UserService interface {
	RegisterUser(ctx context.Context, username, email, password string) (*database.User, string, error)
	LoginUser(ctx context.Context, username, password string) (*database.User, string, error)
	GetProfile(ctx context.Context, userID uint64) (*database.User, error)
	// IssueSocketToken returns a fresh short-lived credential for GET /ws.
	IssueSocketToken(ctx context.Context, userID uint64) (string, error)
}

type userService struct {
	userRepo UserRepository
	tokens   TokenIssuer
}

func NewUserService(userRepo UserRepository, tokens TokenIssuer) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

func (s *userService) RegisterUser(ctx context.Context, username, email, password string) (*database.User, string, error) {
	username = strings.TrimSpace(username)
	if err := common.ValidateUsername(username); err != nil {
		return nil, "", apperr.Validation(err.Error())
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", apperr.Validation(err.Error())
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", apperr.Validation(err.Error())
	}

	exists, err := s.userRepo.CheckUserExists(ctx, username)
	if err != nil {
		return nil, "", apperr.Internal("check username", err)
	}
	if exists {
		return nil, "", apperr.Conflict(apperr.ReasonUsernameTaken, "username already exists")
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", apperr.Internal("hash password", err)
	}

	user := &database.User{
		Username:     username,
		Email:        common.NormalizeEmail(email),
		PasswordHash: hashed,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", apperr.Internal("create user", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", apperr.Internal("sign token", err)
	}
	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, username, password string) (*database.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", apperr.Validation("username and password required")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperr.Unauthenticated("invalid username or password")
	}
	if err != nil {
		return nil, "", apperr.Internal("load user", err)
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", apperr.Unauthenticated("invalid username or password")
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", apperr.Internal("sign token", err)
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*database.User, error) {
	return loadUser(ctx, s.userRepo, userID)
}

func (s *userService) IssueSocketToken(ctx context.Context, userID uint64) (string, error) {
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return "", err
	}
	token, err := s.tokens.GenerateSocketToken(user.ID, user.Username, user.Email)
	if err != nil {
		return "", apperr.Internal("sign socket token", err)
	}
	return token, nil
}

func loadUser(ctx context.Context, repo UserRepository, userID uint64) (*database.User, error) {
	user, err := repo.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, apperr.Internal("load user", err)
	}
	return user, nil
}
