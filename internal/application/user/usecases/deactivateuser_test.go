package usecases

import (
	"context"
	"testing"

	"genturix/internal/domain/user"
	"genturix/internal/shared/errors"
)

func TestDeactivateUser_Success(t *testing.T) {
	target := tenantUser(t, 1, true)

	updated := false
	userRepo := &mockUserRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*user.User, error) {
			return target, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = true
			return nil
		},
	}

	uc := NewDeactivateUserUseCase(userRepo, newTestRecorder(), noopLogger{})

	tenant := uint(1)
	err := uc.Execute(context.Background(), DeactivateUserCommand{
		UserUUID:           "target-uuid",
		ActorCondominiumID: &tenant,
		ActorUUID:          "admin-uuid",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if target.IsActive() {
		t.Error("user should be inactive")
	}
	if !updated {
		t.Error("user should have been persisted")
	}
}

func TestDeactivateUser_SuperAdminReachesAnyTenant(t *testing.T) {
	target := tenantUser(t, 4, true)

	userRepo := &mockUserRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*user.User, error) {
			return target, nil
		},
	}

	uc := NewDeactivateUserUseCase(userRepo, newTestRecorder(), noopLogger{})

	err := uc.Execute(context.Background(), DeactivateUserCommand{
		UserUUID:           "target-uuid",
		ActorCondominiumID: nil,
		ActorUUID:          "root-uuid",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
}

func TestDeactivateUser_OtherTenantIsNotFound(t *testing.T) {
	target := tenantUser(t, 4, true)

	userRepo := &mockUserRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*user.User, error) {
			return target, nil
		},
	}

	uc := NewDeactivateUserUseCase(userRepo, newTestRecorder(), noopLogger{})

	tenant := uint(1)
	err := uc.Execute(context.Background(), DeactivateUserCommand{
		UserUUID:           "target-uuid",
		ActorCondominiumID: &tenant,
		ActorUUID:          "admin-uuid",
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeNotFound {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeNotFound)
	}
	if !target.IsActive() {
		t.Error("the target must stay active")
	}
}

func TestDeactivateUser_SelfIsRejected(t *testing.T) {
	target := tenantUser(t, 1, true)

	userRepo := &mockUserRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*user.User, error) {
			return target, nil
		},
	}

	uc := NewDeactivateUserUseCase(userRepo, newTestRecorder(), noopLogger{})

	tenant := uint(1)
	err := uc.Execute(context.Background(), DeactivateUserCommand{
		UserUUID:           "target-uuid",
		ActorCondominiumID: &tenant,
		ActorUUID:          target.UUID(),
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeValidation {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeValidation)
	}
}

func TestDeactivateUser_AlreadyInactiveIsConflict(t *testing.T) {
	target := tenantUser(t, 1, false)

	userRepo := &mockUserRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*user.User, error) {
			return target, nil
		},
	}

	uc := NewDeactivateUserUseCase(userRepo, newTestRecorder(), noopLogger{})

	tenant := uint(1)
	err := uc.Execute(context.Background(), DeactivateUserCommand{
		UserUUID:           "target-uuid",
		ActorCondominiumID: &tenant,
		ActorUUID:          "admin-uuid",
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeConflict {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeConflict)
	}
}
