package database

import (
	"path/filepath"
	"testing"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(filepath.Join(t.TempDir(), "blog_test.db"))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func mustCreateUser(t *testing.T, us *UserService, username, email, password string) int {
	t.Helper()

	user, err := us.CreateUser(username, email, password)
	if err != nil {
		t.Fatalf("CreateUser(%q, %q): %v", username, email, err)
	}
	return user.ID
}

func mustCreatePost(t *testing.T, ps *PostService, title, content string, userID int) int {
	t.Helper()

	post, err := ps.CreatePost(title, content, userID)
	if err != nil {
		t.Fatalf("CreatePost(%q): %v", title, err)
	}
	return post.ID
}
