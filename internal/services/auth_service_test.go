package services_test

import (
	"errors"
	"testing"

	"orderdesk/internal/repos"
	"orderdesk/internal/services"
)

func TestAuthLoginAndLogout(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	svc := &services.AuthService{Users: repos.NewUserRepo(db)}

	// seeded user
	u, err := svc.Login("sid-1", "renuka", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	if u.Username != "renuka" || u.Role != "USER" {
		t.Fatalf("bad user: %+v", u)
	}

	cur, err := svc.CurrentUser("sid-1")
	if err != nil || cur.ID != u.ID {
		t.Fatalf("session not bound: %v %+v", err, cur)
	}

	if err := svc.Logout("sid-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CurrentUser("sid-1"); err == nil {
		t.Fatal("session should be unbound after logout")
	}
}

func TestAuthBadCreds(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	svc := &services.AuthService{Users: repos.NewUserRepo(db)}

	if _, err := svc.Login("sid-1", "renuka", "wrong-password"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
	if _, err := svc.Login("sid-1", "nobody", "Passw0rd!"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
}

func TestAuthRegister(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	svc := &services.AuthService{Users: repos.NewUserRepo(db)}

	u, err := svc.Register("newbie", "n@orderdesk.test", "S3cret!pw")
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != "USER" || u.Hash == "S3cret!pw" {
		t.Fatalf("bad registered user: %+v", u)
	}

	if _, err := svc.Register("newbie", "n2@orderdesk.test", "S3cret!pw"); !errors.Is(err, services.ErrUsernameTaken) {
		t.Fatalf("want ErrUsernameTaken, got %v", err)
	}

	if _, err := svc.Login("sid-2", "newbie", "S3cret!pw"); err != nil {
		t.Fatalf("registered user cannot log in: %v", err)
	}
}
