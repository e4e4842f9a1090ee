package database

import (
	"bytes"
	"strings"
	"testing"
)

func TestCreateUserAndGetByEmail(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)

	created, err := us.CreateUser("alice", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected non-zero user ID")
	}

	user, err := us.GetUserByEmail("a@x.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user.ID != created.ID || user.Username != "alice" || user.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Пароль хранится только как bcrypt-хеш
	if bytes.Contains(user.Password, []byte("secret1")) {
		t.Fatalf("password stored in plain text")
	}
}

func TestCreateUserValidation(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"short username", "ab", "a@x.com", "secret1", ErrShortUsername},
		{"long username", strings.Repeat("a", 51), "a@x.com", "secret1", ErrLongUsername},
		{"bad username chars", "alice!", "a@x.com", "secret1", ErrInvalidUsername},
		{"empty email", "alice", "", "secret1", ErrEmptyEmail},
		{"long email", "alice", strings.Repeat("a", 250) + "@x.com", "secret1", ErrLongEmail},
		{"invalid email", "alice", "not-an-email", "secret1", ErrInvalidEmail},
		{"short password", "alice", "a@x.com", "12345", ErrShortPassword},
		{"long password", "alice", "a@x.com", strings.Repeat("p", 129), ErrLongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := us.CreateUser(tt.username, tt.email, tt.password)
			if err != tt.wantErr {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateUserUniqueness(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)

	mustCreateUser(t, us, "alice", "a@x.com", "secret1")

	if _, err := us.CreateUser("alice", "other@x.com", "secret1"); err != ErrUsernameExists {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
	if _, err := us.CreateUser("bob", "a@x.com", "secret1"); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestVerifyUser(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)

	userID := mustCreateUser(t, us, "alice", "a@x.com", "secret1")

	id, username, err := us.VerifyUser("a@x.com", "secret1")
	if err != nil {
		t.Fatalf("VerifyUser: %v", err)
	}
	if id != userID || username != "alice" {
		t.Fatalf("unexpected verify result: id=%d username=%q", id, username)
	}

	if _, _, err := us.VerifyUser("a@x.com", "wrong-password"); err != ErrIncorrectPassword {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
	if _, _, err := us.VerifyUser("nobody@x.com", "secret1"); err != ErrEmailNotFound {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestGetUserMissing(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)

	if _, err := us.GetUser(42); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := us.GetUserByEmail("nobody@x.com"); err != ErrEmailNotFound {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}
