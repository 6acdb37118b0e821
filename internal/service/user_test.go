package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/campusforge/ideabank/internal/auth"
	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/mocks"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/campusforge/ideabank/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newUserService(repo *mocks.MockUserRepositoryIface) *service.UserService {
	return service.NewUserService(
		repo,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour),
	)
}

func TestSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("role defaults to student", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		gomock.InOrder(
			repo.EXPECT().
				FindByEmail(gomock.Any(), "ada@example.com").
				Return(nil, domain.ErrUserNotFound),
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, user *model.User) error {
					assert.Equal(t, model.RoleStudent, user.Role)
					assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
					user.ID = uuid.New()
					return nil
				}),
		)

		svc := newUserService(repo)
		out, err := svc.Signup(context.Background(), service.SignupInput{
			Name:     "Ada Student",
			Email:    "ada@example.com",
			Password: "hunter2hunter2",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, model.RoleStudent, out.User.Role)
	})

	t.Run("unknown roles are refused", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := newUserService(repo)

		_, err := svc.Signup(context.Background(), service.SignupInput{
			Name:     "Eve",
			Email:    "eve@example.com",
			Password: "hunter2hunter2",
			Role:     "superuser",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("an existing email is refused", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().
			FindByEmail(gomock.Any(), "ada@example.com").
			Return(&model.User{ID: uuid.New(), Email: "ada@example.com"}, nil)

		svc := newUserService(repo)
		_, err := svc.Signup(context.Background(), service.SignupInput{
			Name:     "Ada Again",
			Email:    "ada@example.com",
			Password: "hunter2hunter2",
		})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("short passwords are refused", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := newUserService(repo)

		_, err := svc.Signup(context.Background(), service.SignupInput{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "short",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hashed, err := hasher.Hash("correct_password")
	assert.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Name:         "Ada Student",
		Email:        "ada@example.com",
		PasswordHash: hashed,
		Role:         model.RoleStudent,
	}

	t.Run("valid credentials produce a token", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := newUserService(repo)
		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "correct_password",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)

		claims, err := auth.NewTokenManager("test_secret", time.Hour).Validate(out.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, model.RoleStudent, claims.Role)
	})

	t.Run("a wrong password is rejected", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := newUserService(repo)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "wrong_password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("an unknown email reads the same as a wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrUserNotFound)

		svc := newUserService(repo)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever_password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
