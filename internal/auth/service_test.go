package auth_test

import (
	"context"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/bersitedi/MyWorkoutPlanner/internal/auth"
	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
	"github.com/bersitedi/MyWorkoutPlanner/internal/sqlite"
	"github.com/bersitedi/MyWorkoutPlanner/internal/testhelpers"
)

func newTestService(t *testing.T) (*auth.Service, context.Context) {
	t.Helper()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})

	sessions := scs.New()
	svc := auth.NewService(db, sessions, logger)

	// Load an empty session so that Put and RenewToken have a session to
	// operate on, the same way scs middleware would.
	sessionCtx, err := sessions.Load(ctx, "")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return svc, sessionCtx
}

func TestService_SignUpAndLogIn(t *testing.T) {
	svc, ctx := newTestService(t)

	userID, err := svc.SignUp(ctx, "Lifter@Example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if userID == 0 {
		t.Fatal("expected a non-zero user ID")
	}

	// Email comparison is case-insensitive.
	loggedInID, err := svc.LogIn(ctx, "lifter@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("log in: %v", err)
	}
	if loggedInID != userID {
		t.Errorf("got user ID %d, want %d", loggedInID, userID)
	}
}

func TestService_SignUpDuplicateEmail(t *testing.T) {
	svc, ctx := newTestService(t)

	if _, err := svc.SignUp(ctx, "lifter@example.com", "correct horse battery"); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	_, err := svc.SignUp(ctx, "lifter@example.com", "another password")
	if !errors.Is(err, auth.ErrAccountExists) {
		t.Errorf("got error %v, want ErrAccountExists", err)
	}
}

func TestService_SignUpRejectsWeakInput(t *testing.T) {
	svc, ctx := newTestService(t)

	if _, err := svc.SignUp(ctx, "not-an-email", "correct horse battery"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("malformed email: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.SignUp(ctx, "lifter@example.com", "short"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("short password: got %v, want ErrInvalidCredentials", err)
	}
}

func TestService_LogInFailures(t *testing.T) {
	svc, ctx := newTestService(t)

	if _, err := svc.SignUp(ctx, "lifter@example.com", "correct horse battery"); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	if _, err := svc.LogIn(ctx, "lifter@example.com", "wrong password"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.LogIn(ctx, "stranger@example.com", "correct horse battery"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestService_LogOutWithoutSessionIsNotAnError(t *testing.T) {
	svc, ctx := newTestService(t)

	if err := svc.LogOut(ctx); err != nil {
		t.Errorf("log out: %v", err)
	}
}
