package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"genturix/internal/domain/user"
	"genturix/internal/shared/errors"
)

func TestLogin_Success(t *testing.T) {
	resident := testResident(t, true)

	var lookedUp string
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			lookedUp = email
			return resident, nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, &mockLimiter{}, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "  Ana@Example.com ",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if lookedUp != "ana@example.com" {
		t.Errorf("lookup email = %q, want the trimmed lowercase form", lookedUp)
	}
	if result.AccessToken != "access" || result.RefreshToken != "refresh" {
		t.Errorf("tokens = (%q, %q), want the issued pair", result.AccessToken, result.RefreshToken)
	}
	if result.User.UUID() != resident.UUID() {
		t.Errorf("user uuid = %q, want %q", result.User.UUID(), resident.UUID())
	}
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	resident := testResident(t, true)

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return resident, nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(password, hash string) error {
			return stderrors.New("hash mismatch")
		},
	}

	uc := NewLoginUseCase(userRepo, hasher, &mockTokenService{}, &mockLimiter{}, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "ana@example.com",
		Password: "wrong",
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeUnauthorized {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeUnauthorized)
	}
}

func TestLogin_UnknownAndInactiveLookTheSame(t *testing.T) {
	inactive := testResident(t, false)

	tests := []struct {
		name     string
		userRepo *mockUserRepository
	}{
		{
			name: "unknown email",
			userRepo: &mockUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return nil, nil
				},
			},
		},
		{
			name: "inactive account",
			userRepo: &mockUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return inactive, nil
				},
			},
		},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewLoginUseCase(tt.userRepo, &mockHasher{}, &mockTokenService{}, &mockLimiter{}, newTestRecorder(), noopLogger{})

			_, err := uc.Execute(context.Background(), LoginCommand{
				Email:    "ana@example.com",
				Password: "secret",
			})

			appErr, ok := err.(*errors.AppError)
			if !ok {
				t.Fatalf("error type = %T, want *errors.AppError", err)
			}
			if appErr.Type != errors.ErrorTypeUnauthorized {
				t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeUnauthorized)
			}
			messages = append(messages, appErr.Message)
		})
	}

	if len(messages) == 2 && messages[0] != messages[1] {
		t.Errorf("messages differ (%q vs %q); they must not reveal which emails exist", messages[0], messages[1])
	}
}

func TestLogin_RateLimited(t *testing.T) {
	limiter := &mockLimiter{
		AllowFunc: func(ctx context.Context, email, ip string) (bool, error) {
			return false, nil
		},
	}
	getByEmailCalled := false
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			getByEmailCalled = true
			return nil, nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, limiter, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "ana@example.com",
		Password: "secret",
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeRateLimited {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeRateLimited)
	}
	if getByEmailCalled {
		t.Error("a throttled attempt must not hit the user store")
	}
}

func TestLogin_OnlyFailuresConsumeTheRateWindow(t *testing.T) {
	resident := testResident(t, true)

	failures := 0
	limiter := &mockLimiter{
		RecordFailureFunc: func(ctx context.Context, email, ip string) {
			failures++
		},
	}
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return resident, nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, limiter, newTestRecorder(), noopLogger{})

	// Repeated valid logins inside one window must never trip the limiter.
	for i := 0; i < 6; i++ {
		if _, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "ana@example.com",
			Password: "secret",
		}); err != nil {
			t.Fatalf("login %d unexpected error: %v", i+1, err)
		}
	}
	if failures != 0 {
		t.Errorf("recorded failures after successful logins = %d, want 0", failures)
	}

	uc = NewLoginUseCase(userRepo, &mockHasher{
		VerifyFunc: func(password, hash string) error {
			return stderrors.New("hash mismatch")
		},
	}, &mockTokenService{}, limiter, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	if err == nil {
		t.Fatal("Execute() expected error for a wrong password")
	}
	if failures != 1 {
		t.Errorf("recorded failures after one wrong password = %d, want 1", failures)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenService{}, &mockLimiter{}, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "", Password: ""})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeValidation {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeValidation)
	}
}
