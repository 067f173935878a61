package handlers_test

import (
	"net/http"
	"testing"

	"orderdesk/internal/domain"
)

func TestProductCRUDEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/products",
		`{"name":"Webcam","price":59.99,"stock_quantity":15,"description":"1080p","image_url":"products/webcam/main.jpg"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	var created domain.Product
	decodeBody(t, resp, &created)
	if created.ID == "" || created.Name != "Webcam" {
		t.Fatalf("bad created product: %+v", created)
	}

	respGet, err := app.Test(jsonReq("GET", "/api/products/"+created.ID, ""))
	if err != nil {
		t.Fatal(err)
	}
	if respGet.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", respGet.StatusCode)
	}

	respPut, err := app.Test(jsonReq("PUT", "/api/products/update/"+created.ID,
		`{"name":"Webcam Pro","price":79.99,"stock_quantity":10,"description":"4K","image_url":"products/webcam/main.jpg"}`))
	if err != nil {
		t.Fatal(err)
	}
	var updated domain.Product
	decodeBody(t, respPut, &updated)
	if updated.Name != "Webcam Pro" || updated.Price != 79.99 || updated.StockQuantity != 10 {
		t.Fatalf("update not applied: %+v", updated)
	}

	respDel, err := app.Test(jsonReq("DELETE", "/api/products/delete/"+created.ID, ""))
	if err != nil {
		t.Fatal(err)
	}
	if respDel.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", respDel.StatusCode)
	}

	respGone, err := app.Test(jsonReq("GET", "/api/products/"+created.ID, ""))
	if err != nil {
		t.Fatal(err)
	}
	if respGone.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 after delete, got %d", respGone.StatusCode)
	}

	respDelAgain, err := app.Test(jsonReq("DELETE", "/api/products/delete/"+created.ID, ""))
	if err != nil {
		t.Fatal(err)
	}
	if respDelAgain.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 deleting twice, got %d", respDelAgain.StatusCode)
	}
}

func TestProductCreateValidation(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"price":10.0,"stock_quantity":5}`},
		{"negative price", `{"name":"Bad","price":-1,"stock_quantity":5}`},
		{"zero price", `{"name":"Bad","price":0,"stock_quantity":5}`},
		{"negative stock", `{"name":"Bad","price":10.0,"stock_quantity":-2}`},
	}
	for _, tc := range cases {
		resp, err := app.Test(jsonReq("POST", "/api/products", tc.body))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", tc.name, resp.StatusCode)
		}
	}
}

// PATCH applies recognized keys and silently ignores the rest.
func TestProductPatchEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("PATCH", "/api/products/update/prod-mouse",
		`{"price":34.50,"unknown_field":"whatever"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var p domain.Product
	decodeBody(t, resp, &p)
	if p.Price != 34.50 {
		t.Fatalf("price not patched: %v", p.Price)
	}
	if p.Name != "Wireless Mouse" || p.StockQuantity != 40 {
		t.Fatalf("untouched fields changed: %+v", p)
	}

	respMiss, err := app.Test(jsonReq("PATCH", "/api/products/update/p-ghost", `{"price":1.0}`))
	if err != nil {
		t.Fatal(err)
	}
	if respMiss.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for unknown product, got %d", respMiss.StatusCode)
	}
}
