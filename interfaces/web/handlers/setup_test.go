package handlers

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"tasktrack/application/serviceimpl"
	"tasktrack/infrastructure/sqlite"
	"tasktrack/interfaces/web/middleware"
	"tasktrack/pkg/flash"
)

// setupApp builds the full app on an in-memory store: real handlers, real
// services, real templates. Routes are registered the same way main does.
func setupApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := sqlite.Migrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	taskRepo := sqlite.NewTaskRepository(db)
	labelRepo := sqlite.NewLabelRepository(db)
	labelService := serviceimpl.NewLabelService(labelRepo)
	taskService := serviceimpl.NewTaskService(taskRepo, labelRepo)

	engine := html.New("../../../views", ".html")
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		Views:        engine,
	})

	h := NewHandlers(&Services{
		TaskService:  taskService,
		LabelService: labelService,
	})

	// Label routes first, matching the production registration order.
	labels := app.Group("/label")
	labels.Get("/", h.LabelHandler.Index)
	labels.Post("/", h.LabelHandler.Create)
	labels.Get("/:id", h.TaskHandler.TasksByLabel)
	labels.Post("/:id", h.LabelHandler.Update)
	labels.Get("/:id/edit", h.LabelHandler.Edit)
	labels.Get("/:id/confirm", h.LabelHandler.Confirm)
	labels.Delete("/:id", h.LabelHandler.Delete)

	app.Get("/", h.TaskHandler.Index)
	app.Post("/", h.TaskHandler.Create)
	app.Get("/:id", h.TaskHandler.Detail)
	app.Post("/:id", h.TaskHandler.Update)
	app.Post("/:id/date", h.TaskHandler.TouchDate)
	app.Get("/:id/confirm", h.TaskHandler.Confirm)
	app.Delete("/:id", h.TaskHandler.Delete)

	return app, db
}

// postForm submits an urlencoded body the way a browser form would.
func postForm(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func sendDelete(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, path, nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	resp.Body.Close()
	return string(b)
}

// popFlash extracts the flash message set on a response, or nil.
func popFlash(t *testing.T, resp *http.Response) *flash.Message {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		if cookie.Name != flash.CookieName || cookie.Value == "" {
			continue
		}
		m, ok := flash.Decode(cookie.Value)
		if !ok {
			t.Fatalf("Flash cookie holds undecodable value %q", cookie.Value)
		}
		return &m
	}
	return nil
}

func requireStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("expected status %d, got %d", want, resp.StatusCode)
	}
}

func requireRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	requireStatus(t, resp, http.StatusSeeOther)
	if got := resp.Header.Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}
