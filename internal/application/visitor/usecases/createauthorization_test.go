package usecases

import (
	"context"
	"testing"
	"time"

	"genturix/internal/domain/notification"
	"genturix/internal/domain/user"
	"genturix/internal/domain/visitor"
	"genturix/internal/shared/authorization"
	"genturix/internal/shared/errors"
)

func testGuard(t *testing.T, id uint) *user.User {
	t.Helper()
	condoID := uint(1)
	g, err := user.Reconstruct(
		id, "guard-uuid", "guard@example.com", "Guardia de Prueba", "hash",
		[]authorization.UserRole{authorization.RoleGuard}, &condoID, true,
		user.RoleData{}, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestCreateAuthorization_NotifiesGuards(t *testing.T) {
	var batch []*notification.Notification
	notificationRepo := &mockNotificationRepository{
		CreateBatchFunc: func(ctx context.Context, notifications []*notification.Notification) error {
			batch = notifications
			return nil
		},
	}
	userRepo := &mockUserRepository{
		ListGuardsFunc: func(ctx context.Context, condominiumID uint) ([]*user.User, error) {
			return []*user.User{testGuard(t, 31), testGuard(t, 32)}, nil
		},
	}
	authRepo := &mockAuthorizationRepository{
		CreateFunc: func(ctx context.Context, a *visitor.Authorization) error {
			return a.SetID(1)
		},
	}

	uc := NewCreateAuthorizationUseCase(authRepo, newTestFanout(notificationRepo, userRepo), newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), CreateAuthorizationCommand{
		CondominiumID:     1,
		ResidentID:        7,
		VisitorName:       "Juan Perez",
		VehiclePlate:      "abc 123",
		AuthorizationType: "permanent",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	if result.Authorization.VehiclePlate != "ABC123" {
		t.Errorf("plate = %q, want normalized uppercase without spaces", result.Authorization.VehiclePlate)
	}
	if len(batch) != 2 {
		t.Fatalf("notified %d guards, want 2", len(batch))
	}
	if batch[0].Type() != notification.TypeVisitorPreregistration {
		t.Errorf("notification type = %v, want %v", batch[0].Type(), notification.TypeVisitorPreregistration)
	}
}

func TestCreateAuthorization_InvalidPlate(t *testing.T) {
	uc := NewCreateAuthorizationUseCase(&mockAuthorizationRepository{}, newTestFanout(&mockNotificationRepository{}, &mockUserRepository{}), newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), CreateAuthorizationCommand{
		CondominiumID:     1,
		ResidentID:        7,
		VisitorName:       "Juan Perez",
		VehiclePlate:      "##",
		AuthorizationType: "permanent",
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeValidation {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeValidation)
	}
}

func TestCreateAuthorization_FanoutFailureDoesNotFail(t *testing.T) {
	notificationRepo := &mockNotificationRepository{
		CreateBatchFunc: func(ctx context.Context, notifications []*notification.Notification) error {
			return context.DeadlineExceeded
		},
	}
	userRepo := &mockUserRepository{
		ListGuardsFunc: func(ctx context.Context, condominiumID uint) ([]*user.User, error) {
			return []*user.User{testGuard(t, 31)}, nil
		},
	}
	authRepo := &mockAuthorizationRepository{
		CreateFunc: func(ctx context.Context, a *visitor.Authorization) error {
			return a.SetID(1)
		},
	}

	uc := NewCreateAuthorizationUseCase(authRepo, newTestFanout(notificationRepo, userRepo), newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), CreateAuthorizationCommand{
		CondominiumID:     1,
		ResidentID:        7,
		VisitorName:       "Juan Perez",
		AuthorizationType: "temporary",
		ValidFrom:         time.Now(),
		ValidTo:           time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Errorf("a failed guard notification must not fail the authorization: %v", err)
	}
}
