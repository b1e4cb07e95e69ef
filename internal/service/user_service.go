package service

import (
	"errors"
	"strings"

	"Blog_Hub/internal/model"
	"Blog_Hub/internal/pkg"
	"Blog_Hub/internal/repository/mysql"
	"Blog_Hub/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type UserService struct {
	repo     *mysql.UserRepository
	sessions *redis.SessionRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: db},
		sessions: &redis.SessionRepository{},
	}
}

func (s *UserService) Register(username, firstName, lastName, email, password string) (*model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, pkg.Validation("username", "must not be empty")
	}
	if len(password) < 6 {
		return nil, pkg.Validation("password", "must be at least 6 characters")
	}
	if _, err := s.repo.FindByUsername(username); err == nil {
		return nil, pkg.Validation("username", "already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login issues a token pair and records the access token as the only
// valid session for this user.
func (s *UserService) Login(username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.AddUserToken(user.ID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.sessions.DeleteUserToken(userID)
}

// Refresh rotates the pair and replaces the stored session token.
func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.AddUserToken(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}
