package auth

import (
	"context"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(NewInMemoryUserRepository())
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "ada@table1837.test", "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID == "" {
		t.Fatal("registered user must get an ID")
	}
	if user.Role != "staff" {
		t.Fatalf("default role should be staff, got %q", user.Role)
	}
	if user.Password == "s3cret" {
		t.Fatal("password must not be stored in plaintext")
	}

	token, got, err := svc.Login(ctx, "ada@table1837.test", "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Fatal("login must return a token")
	}
	if got.ID != user.ID {
		t.Fatalf("login returned wrong user: %q vs %q", got.ID, user.ID)
	}

	userID, email, role, err := ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if userID != user.ID || email != user.Email || role != "staff" {
		t.Fatalf("claims mismatch: %q %q %q", userID, email, role)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(NewInMemoryUserRepository())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@table1837.test", "s3cret"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(ctx, "Other", "ADA@table1837.test", "pw"); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(NewInMemoryUserRepository())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@table1837.test", "s3cret"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Login(ctx, "ada@table1837.test", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@table1837.test", "s3cret"); err != ErrInvalidCredentials {
		t.Fatalf("unknown email should also yield ErrInvalidCredentials, got %v", err)
	}
}
