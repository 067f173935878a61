package handlers_test

import (
	"net/http"
	"testing"
)

func TestLoginEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/auth/login", `{"username":"renuka","password":"Passw0rd!"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	sid := ""
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			sid = c.Value
		}
	}
	if sid == "" {
		t.Fatal("sid cookie not set on login")
	}

	respBad, err := app.Test(jsonReq("POST", "/api/auth/login", `{"username":"renuka","password":"nope-nope"}`))
	if err != nil {
		t.Fatal(err)
	}
	if respBad.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", respBad.StatusCode)
	}
}

func TestRegisterEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/auth/register",
		`{"username":"newbie","email":"n@orderdesk.test","password":"S3cret!pw"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}

	respDup, err := app.Test(jsonReq("POST", "/api/auth/register",
		`{"username":"newbie","email":"n2@orderdesk.test","password":"S3cret!pw"}`))
	if err != nil {
		t.Fatal(err)
	}
	if respDup.StatusCode != http.StatusConflict {
		t.Fatalf("want 409 for duplicate username, got %d", respDup.StatusCode)
	}

	respShort, err := app.Test(jsonReq("POST", "/api/auth/register",
		`{"username":"x","email":"bad","password":"p"}`))
	if err != nil {
		t.Fatal(err)
	}
	if respShort.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for invalid input, got %d", respShort.StatusCode)
	}
}
