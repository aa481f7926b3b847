package usecases

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/domain/repositories"
	"localserve.backend/pkg/crypto"
	"localserve.backend/pkg/jwt"
	"localserve.backend/pkg/otp"
	"localserve.backend/pkg/utils"
)

var phonePattern = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)

// AuthUsecase handles registration, verification and login business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	otpManager *otp.Manager
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	otpManager *otp.Manager,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		otpManager: otpManager,
		jwtService: jwtService,
	}
}

// Register creates an unverified account and issues a verification code
// stored under both the email and the phone number. The code is returned
// to the caller: delivery over SMS or email is out of scope and clients
// surface it directly in non-production environments.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, string, error) {
	if input.Pin != input.PinConfirm {
		return nil, "", domainerrors.BadRequest("pin and confirmation do not match")
	}
	if !phonePattern.MatchString(input.Phone) {
		return nil, "", domainerrors.BadRequest("invalid phone number")
	}
	role := entities.UserRole(input.Role)
	if role != entities.UserRoleUser && role != entities.UserRoleProvider {
		return nil, "", domainerrors.BadRequest("invalid role")
	}

	_, err := u.userRepo.GetByEmailOrPhone(ctx, input.Email)
	if err == nil {
		return nil, "", domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, "", err
	}
	_, err = u.userRepo.GetByEmailOrPhone(ctx, input.Phone)
	if err == nil {
		return nil, "", domainerrors.Conflict("phone already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, "", err
	}

	passwordHash, err := crypto.HashSecret(input.Password)
	if err != nil {
		return nil, "", err
	}
	pinHash, err := crypto.HashSecret(input.Pin)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: passwordHash,
		PinHash:      pinHash,
		Role:         role,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	code, err := u.otpManager.Issue(ctx, input.Email, input.Phone)
	if err != nil {
		return nil, "", err
	}
	return user, code, nil
}

// VerifyOTP checks the code for a contact and marks the matching account
// verified. A contact with no matching account still verifies cleanly so
// the endpoint does not leak which identifiers are registered.
func (u *AuthUsecase) VerifyOTP(ctx context.Context, input *entities.OTPVerifyInput) error {
	if err := u.otpManager.Verify(ctx, input.Contact, input.OTP); err != nil {
		switch {
		case errors.Is(err, otp.ErrNotFound):
			return domainerrors.BadRequest("no otp requested for this contact")
		case errors.Is(err, otp.ErrExpired):
			return domainerrors.BadRequest("otp expired")
		case errors.Is(err, otp.ErrMismatch):
			return domainerrors.BadRequest("incorrect otp")
		default:
			return err
		}
	}

	user, err := u.userRepo.GetByEmailOrPhone(ctx, input.Contact)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}
	return u.userRepo.MarkVerified(ctx, user.ID)
}

// Login authenticates with either the password or the four-digit PIN and
// issues a signed token on success
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmailOrPhone(ctx, input.EmailOrPhone)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if !user.Verified {
		return nil, domainerrors.Forbidden("account not verified")
	}

	switch entities.LoginMode(input.LoginType) {
	case entities.LoginModePassword:
		if input.Password == "" || !crypto.CheckSecret(input.Password, user.PasswordHash) {
			return nil, domainerrors.Unauthorized("invalid credentials")
		}
	case entities.LoginModePin:
		if input.Pin == "" || !crypto.CheckSecret(input.Pin, user.PinHash) {
			return nil, domainerrors.Unauthorized("invalid pin")
		}
	default:
		return nil, domainerrors.BadRequest("invalid login type")
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{Token: token, User: user}, nil
}

// RequestChangePin issues a fresh code for the PIN change flow. The
// account must already exist.
func (u *AuthUsecase) RequestChangePin(ctx context.Context, emailOrPhone string) (string, error) {
	if _, err := u.userRepo.GetByEmailOrPhone(ctx, emailOrPhone); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.NotFound("account not found")
		}
		return "", err
	}
	return u.otpManager.Issue(ctx, emailOrPhone)
}

// ChangePin consumes the code and replaces the stored PIN hash. The code
// only needs to be present and match; it is not re-checked for expiry.
func (u *AuthUsecase) ChangePin(ctx context.Context, input *entities.ChangePinInput) error {
	if input.NewPin != input.ConfirmPin {
		return domainerrors.BadRequest("pin and confirmation do not match")
	}

	if err := u.otpManager.Consume(ctx, input.EmailOrPhone, input.OTP); err != nil {
		switch {
		case errors.Is(err, otp.ErrNotFound):
			return domainerrors.BadRequest("no otp requested for this contact")
		case errors.Is(err, otp.ErrMismatch):
			return domainerrors.BadRequest("incorrect otp")
		default:
			return err
		}
	}

	user, err := u.userRepo.GetByEmailOrPhone(ctx, input.EmailOrPhone)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("account not found")
		}
		return err
	}

	pinHash, err := crypto.HashSecret(input.NewPin)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePinHash(ctx, user.ID, pinHash)
}

// GetProfile returns the account for the authenticated user id
func (u *AuthUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("account not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateProviderDetails replaces the payout details on a provider account
func (u *AuthUsecase) UpdateProviderDetails(ctx context.Context, userID uuid.UUID, input *entities.ProviderDetailsInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("account not found")
		}
		return err
	}
	if user.Role != entities.UserRoleProvider {
		return domainerrors.Forbidden("only providers can set payment details")
	}

	details := &entities.ProviderDetails{
		UpiID:       nullFromString(input.UpiID),
		BankAccount: nullFromString(input.BankAccount),
		IfscCode:    nullFromString(input.IfscCode),
		BranchName:  nullFromString(input.BranchName),
	}
	return u.userRepo.UpdateProviderDetails(ctx, user.ID, details)
}
