package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatia/estatia/internal/domain/entity"
	"github.com/estatia/estatia/pkg/apperror"
	"github.com/estatia/estatia/pkg/helpers"
	"github.com/estatia/estatia/pkg/mailer"
)

// fakeUserRepo emulates the postgres repository including the unique index on
// email.
type fakeUserRepo struct {
	byEmail map[string]entity.User
	nextID  int64
	creates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return apperror.NewConflictError("email already exists")
	}
	r.creates++
	r.nextID++
	u.ID = r.nextID
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.byEmail[u.Email] = *u
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type fakeEmailQueue struct {
	jobs []mailer.EmailJob
}

func (q *fakeEmailQueue) PublishJSON(ctx context.Context, body any) error {
	job, ok := body.(mailer.EmailJob)
	if ok {
		q.jobs = append(q.jobs, job)
	}
	return nil
}

func validSignupRequest() SignupRequest {
	return SignupRequest{
		FirstName:   "Asha",
		LastName:    "Verma",
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		Password:    "secret123",
		Type:        "buyer",
	}
}

func TestUserServiceSignup(t *testing.T) {
	repo := newFakeUserRepo()
	queue := &fakeEmailQueue{}
	svc := NewUserService(repo, queue, nil)

	resp, err := svc.Signup(context.Background(), validSignupRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "asha@example.com", resp.Email)
	assert.Equal(t, "Asha", resp.FirstName)

	// stored password is a bcrypt hash, never the plaintext
	stored := repo.byEmail["asha@example.com"]
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "secret123"))

	// welcome email job enqueued for the worker
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, "asha@example.com", queue.jobs[0].To)
	assert.Equal(t, mailer.WelcomeTemplate, queue.jobs[0].Template)
}

func TestUserServiceSignupResponseHasNoPasswordField(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil, nil)

	resp, err := svc.Signup(context.Background(), validSignupRequest())
	require.NoError(t, err)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.NotContains(t, out, "password")
}

func TestUserServiceSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignupRequest())
	require.NoError(t, err)
	createsAfterFirst := repo.creates

	_, err = svc.Signup(ctx, validSignupRequest())
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.ConflictError, appErr.Type)
	assert.Equal(t, "email already exists", appErr.Message)

	// the conflict path performs no insert
	assert.Equal(t, createsAfterFirst, repo.creates)
}

func TestUserServiceSignupSucceedsWithoutQueue(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil, nil)

	resp, err := svc.Signup(context.Background(), validSignupRequest())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}
