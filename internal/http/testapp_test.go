package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"orderdesk/internal/http/handlers"
	"orderdesk/internal/repos"
)

// Minimal app mirroring the route layout in cmd/orderdesk.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	app := fiber.New()
	app.Use(requestid.New())

	deps := handlers.NewDeps(db)
	api := app.Group("/api")

	orders := api.Group("/orders")
	orders.Post("/place", deps.OrderHandler.Place)
	orders.Get("/", deps.OrderHandler.List)
	orders.Get("/user/:userId", deps.OrderHandler.ListByUser)
	orders.Put("/update/:id", deps.OrderHandler.UpdateStatus)

	products := api.Group("/products")
	products.Post("/", deps.ProductHandler.Create)
	products.Get("/", deps.ProductHandler.List)
	products.Get("/:id", deps.ProductHandler.Get)
	products.Put("/update/:id", deps.ProductHandler.Update)
	products.Patch("/update/:id", deps.ProductHandler.Patch)
	products.Delete("/delete/:id", deps.ProductHandler.Delete)

	auth := api.Group("/auth")
	auth.Post("/register", deps.AuthHandler.Register)
	auth.Post("/login", deps.AuthHandler.Login)
	auth.Post("/logout", deps.AuthHandler.Logout)

	return app, db
}

func jsonReq(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		t.Fatalf("bad json %q: %v", b, err)
	}
}
