package services

import (
	"context"
	"errors"

	"github.com/dkovalev/adboard/internal/logger"
	"github.com/dkovalev/adboard/internal/models"
	"github.com/dkovalev/adboard/internal/password"
	"github.com/dkovalev/adboard/internal/repositories"
)

// Error variables
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (int64, error)
	Update(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, id int64) error
}

// UserService handles user registration and CRUD.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// Register creates a new user: the password is hashed, a fresh bearer token
// is generated, and the record is inserted. Returns the new user id.
func (svc *UserService) Register(ctx context.Context, login, plaintext string, mail *string) (int64, error) {
	hashed, err := password.Hash(plaintext)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	token, err := password.NewToken()
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, &models.UserDB{
		Login:    login,
		Password: hashed,
		Mail:     mail,
		Token:    token,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Errorw("login already taken", "login", login)
			return 0, ErrUserExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Get returns the user with the given id.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update overwrites the supplied fields of an existing user.
// A supplied password is re-hashed before storing.
func (svc *UserService) Update(ctx context.Context, id int64, patch models.UserPatch) error {
	user, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}

	if patch.Login != nil {
		user.Login = *patch.Login
	}
	if patch.Password != nil {
		hashed, err := password.Hash(*patch.Password)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return err
		}
		user.Password = hashed
	}
	if patch.Mail != nil {
		user.Mail = patch.Mail
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Errorw("login already taken", "login", user.Login)
			return ErrUserExists
		}
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return err
	}

	return nil
}

// Delete removes an existing user.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := svc.Get(ctx, id); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}

	return nil
}
