package application

import (
	"context"

	"github.com/sirupsen/logrus"

	repo "github.com/estatia/estatia/internal/domain/repository"
	"github.com/estatia/estatia/pkg/apperror"
	"github.com/estatia/estatia/pkg/helpers"
	"github.com/estatia/estatia/pkg/mailer"
)

// EmailQueue publishes email jobs for the worker. *helpers.RabbitPublisher
// satisfies it; tests substitute a fake.
type EmailQueue interface {
	PublishJSON(ctx context.Context, body any) error
}

// UserService owns registration. There is no login flow; signup is the only
// operation on users.
type UserService struct {
	Repo   repo.UserRepository
	Queue  EmailQueue
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, queue EmailQueue, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Queue: queue, Logger: logger}
}

// Signup registers a new user. The email pre-check covers the common case;
// the unique index on users.email decides when two signups race, and the
// repository surfaces that violation as the same conflict error.
func (s *UserService) Signup(ctx context.Context, req SignupRequest) (UserResponse, error) {
	exists, err := s.Repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return UserResponse{}, err
	}
	if exists {
		return UserResponse{}, apperror.NewConflictError("email already exists")
	}

	u := UserFromSignup(req)
	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return UserResponse{}, apperror.NewInternalError("failed to hash password", err)
	}
	u.Password = hash

	if err := s.Repo.Create(ctx, u); err != nil {
		return UserResponse{}, err
	}

	s.enqueueWelcomeEmail(ctx, u.Email, u.FirstName)
	return ToUserResponse(u), nil
}

// enqueueWelcomeEmail is best effort; registration succeeds even when the
// queue is down.
func (s *UserService) enqueueWelcomeEmail(ctx context.Context, email, firstName string) {
	if s.Queue == nil {
		return
	}
	job := mailer.EmailJob{
		To:       email,
		Template: mailer.WelcomeTemplate,
		Data:     map[string]any{"FirstName": firstName, "Email": email},
	}
	if err := s.Queue.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Warn("welcome email enqueue failed")
	}
}
