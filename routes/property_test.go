package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// buildPublicTestApp wires the public write paths with the request
// validator. Handlers must reject invalid payloads before any storage
// access, so no database is needed here.
func buildPublicTestApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	property := app.Party("/api/property")
	{
		property.Post("/", CreateProperty)
		property.Post("/{id:uint}/interest", SubmitInterest)
	}
	app.Post("/api/contact", SubmitContact)
	app.Post("/api/user/login", Login)

	app.Build()
	return app
}

func postJSON(t *testing.T, app *iris.Application, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestCreatePropertyRejectsMissingFields(t *testing.T) {
	app := buildPublicTestApp()

	cases := []struct {
		name string
		body string
	}{
		{"empty draft", `{}`},
		{"missing title", `{"description":"d","location":"Dehradun","landSize":2.5,"askingPrice":25000000,"images":["https://img.example/1.jpg"],"seller":{"name":"A","phone":"123","email":"a@b.c"}}`},
		{"zero land size", `{"title":"t","description":"d","location":"Dehradun","landSize":0,"askingPrice":25000000,"images":["https://img.example/1.jpg"],"seller":{"name":"A","phone":"123","email":"a@b.c"}}`},
		{"negative price", `{"title":"t","description":"d","location":"Dehradun","landSize":2.5,"askingPrice":-1,"images":["https://img.example/1.jpg"],"seller":{"name":"A","phone":"123","email":"a@b.c"}}`},
		{"no images", `{"title":"t","description":"d","location":"Dehradun","landSize":2.5,"askingPrice":25000000,"images":[],"seller":{"name":"A","phone":"123","email":"a@b.c"}}`},
		{"bad unit", `{"title":"t","description":"d","location":"Dehradun","landSize":2.5,"landSizeUnit":"bigha","askingPrice":25000000,"images":["https://img.example/1.jpg"],"seller":{"name":"A","phone":"123","email":"a@b.c"}}`},
		{"seller without email", `{"title":"t","description":"d","location":"Dehradun","landSize":2.5,"askingPrice":25000000,"images":["https://img.example/1.jpg"],"seller":{"name":"A","phone":"123"}}`},
	}

	for _, c := range cases {
		resp := postJSON(t, app, "/api/property", c.body)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d (%s)", c.name, resp.Code, resp.Body.String())
		}
		if !strings.Contains(resp.Body.String(), `"success":false`) {
			t.Errorf("%s: expected failure envelope, got %s", c.name, resp.Body.String())
		}
	}
}

func TestSubmitInterestRejectsMissingContact(t *testing.T) {
	app := buildPublicTestApp()

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"Buyer","phone":"555","message":"hi"}`},
		{"missing name", `{"phone":"555","email":"buyer@example.com"}`},
		{"missing phone", `{"name":"Buyer","email":"buyer@example.com"}`},
		{"malformed email", `{"name":"Buyer","phone":"555","email":"not-an-email"}`},
	}

	for _, c := range cases {
		resp := postJSON(t, app, "/api/property/1/interest", c.body)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d (%s)", c.name, resp.Code, resp.Body.String())
		}
	}
}

func TestSubmitContactRejectsMissingFields(t *testing.T) {
	app := buildPublicTestApp()

	resp := postJSON(t, app, "/api/contact", `{"name":"A","email":"a@b.c"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing subject/message, got %d", resp.Code)
	}
}

func TestLoginRejectsMalformedPayload(t *testing.T) {
	app := buildPublicTestApp()

	resp := postJSON(t, app, "/api/user/login", `{"email":"not-an-email","password":""}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed credentials, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"success":false`) {
		t.Fatalf("expected failure envelope, got %s", resp.Body.String())
	}
}
