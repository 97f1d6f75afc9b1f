package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opshive/hrms/internal/audit"
	"github.com/opshive/hrms/internal/auth"
	"github.com/opshive/hrms/internal/domain"
	"github.com/opshive/hrms/internal/mocks"
	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/service"
)

func newAuthService(orgRepo *mocks.MockOrganisationRepositoryIface, userRepo *mocks.MockUserRepositoryIface, recorder audit.Recorder) *service.AuthService {
	return service.NewAuthService(
		orgRepo,
		userRepo,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour),
		recorder,
	)
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := service.RegisterInput{
		OrgName:   "Acme",
		AdminName: "Alice",
		Email:     "alice@acme.com",
		Password:  "secret1",
	}

	t.Run("successful registration", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		gomock.InOrder(
			orgRepo.EXPECT().
				FindByName(gomock.Any(), "Acme").
				Return(nil, domain.ErrNotFound),

			userRepo.EXPECT().
				FindByEmail(gomock.Any(), "alice@acme.com").
				Return(nil, domain.ErrNotFound),

			orgRepo.EXPECT().
				CreateWithAdmin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, org *model.Organisation, admin *model.User, entry *model.Log) error {
					org.ID = uuid.New()
					admin.ID = uuid.New()
					admin.OrganisationID = org.ID
					assert.Equal(t, audit.ActionRegister, entry.Action)
					return nil
				}),
		)

		svc := newAuthService(orgRepo, userRepo, audit.NoopRecorder{})

		output, err := svc.Register(context.Background(), input)
		require.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, "Alice", output.User.Name)
		assert.Equal(t, "alice@acme.com", output.User.Email)
		assert.NotEqual(t, "secret1", output.User.PasswordHash, "password must never be stored in the clear")
	})

	t.Run("duplicate organisation name", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		orgRepo.EXPECT().
			FindByName(gomock.Any(), "Acme").
			Return(&model.Organisation{ID: uuid.New(), Name: "Acme"}, nil)

		svc := newAuthService(orgRepo, userRepo, audit.NoopRecorder{})

		_, err := svc.Register(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrOrganisationExists)
	})

	t.Run("duplicate email across organisations", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		orgRepo.EXPECT().
			FindByName(gomock.Any(), "Acme").
			Return(nil, domain.ErrNotFound)

		// Email registered under a different organisation still collides.
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "alice@acme.com").
			Return(&model.User{ID: uuid.New(), OrganisationID: uuid.New(), Email: "alice@acme.com"}, nil)

		svc := newAuthService(orgRepo, userRepo, audit.NoopRecorder{})

		_, err := svc.Register(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("blank fields fail validation", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		svc := newAuthService(orgRepo, userRepo, audit.NoopRecorder{})

		_, err := svc.Register(context.Background(), service.RegisterInput{
			OrgName: "Acme",
			Email:   "alice@acme.com",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	orgID := uuid.New()
	userID := uuid.New()
	user := &model.User{
		ID:             userID,
		OrganisationID: orgID,
		Email:          "alice@acme.com",
		PasswordHash:   hash,
		Name:           "Alice",
	}

	t.Run("successful login records audit entry", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		recorder := mocks.NewMockRecorder(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "alice@acme.com").
			Return(user, nil)

		recorder.EXPECT().
			Record(gomock.Any(), orgID, &userID, audit.ActionLogin, gomock.Any()).
			Return(nil)

		svc := newAuthService(orgRepo, userRepo, recorder)

		output, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "alice@acme.com",
			Password: "correct_password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, userID, output.User.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@acme.com").
			Return(nil, domain.ErrNotFound)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "alice@acme.com").
			Return(user, nil)

		svc := newAuthService(orgRepo, userRepo, audit.NoopRecorder{})

		_, unknownErr := svc.Login(context.Background(), service.LoginInput{
			Email:    "nobody@acme.com",
			Password: "whatever",
		})
		_, wrongErr := svc.Login(context.Background(), service.LoginInput{
			Email:    "alice@acme.com",
			Password: "wrong_password",
		})

		assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, domain.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}
