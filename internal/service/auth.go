// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/opshive/hrms/internal/audit"
	"github.com/opshive/hrms/internal/auth"
	"github.com/opshive/hrms/internal/domain"
	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/repository"
)

type AuthService struct {
	orgRepo  repository.OrganisationRepositoryIface
	userRepo repository.UserRepositoryIface
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	recorder audit.Recorder
	validate *validator.Validate
}

func NewAuthService(
	orgRepo repository.OrganisationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	recorder audit.Recorder,
) *AuthService {
	return &AuthService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		recorder: recorder,
		validate: validator.New(),
	}
}

type RegisterInput struct {
	OrgName   string `json:"orgName" validate:"required"`
	AdminName string `json:"adminName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type RegisterOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates a new organisation together with its first admin user
// and the registration audit row, all in one transaction, then issues the
// bearer credential.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	// Pre-checks give the caller a precise error; the unique indexes close
	// the window against concurrent registrations.
	if _, err := s.orgRepo.FindByName(ctx, input.OrgName); err == nil {
		return nil, domain.ErrOrganisationExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	org := &model.Organisation{Name: input.OrgName}
	admin := &model.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.AdminName,
	}
	entry := &model.Log{
		Action: audit.ActionRegister,
		Meta: map[string]interface{}{
			"orgName":   input.OrgName,
			"adminName": input.AdminName,
			"email":     input.Email,
		},
	}

	if err := s.orgRepo.CreateWithAdmin(ctx, org, admin, entry); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(admin.ID.String(), org.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &RegisterOutput{User: admin, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login verifies the credentials and issues a fresh token. An unknown
// email and a wrong password both come back as ErrInvalidCredentials so
// the response does not leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.recorder.Record(ctx, user.OrganisationID, &user.ID, audit.ActionLogin, map[string]interface{}{
		"email": input.Email,
	}); err != nil {
		return nil, fmt.Errorf("recording login: %w", err)
	}

	token, err := s.tokens.Generate(user.ID.String(), user.OrganisationID.String())
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}
