package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/todo-tracker/domain/apperr"
	"github.com/example/todo-tracker/modules/activity"
	"github.com/example/todo-tracker/modules/category"
	"github.com/example/todo-tracker/modules/task"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ ...any) {}
func (m *mockLogger) Info(_ string, _ ...any)  {}
func (m *mockLogger) Warn(_ string, _ ...any)  {}
func (m *mockLogger) Error(_ string, _ ...any) {}
func (m *mockLogger) With(_ ...any) types.Logger {
	return m
}
func (m *mockLogger) WithModule(_ string) types.Logger {
	return m
}
func (m *mockLogger) WithError(_ error) types.Logger {
	return m
}

// fakeTaskPort overrides only the methods a test needs; the rest panic.
type fakeTaskPort struct {
	task.TaskPort
	create     func(*task.CreateTaskRequest) (*task.TaskView, error)
	get        func(string) (*task.TaskView, error)
	list       func(*task.ListTasksRequest) (*task.ListTasksResponse, error)
	count      func(string) (int, error)
	transition func(id, action string) (*task.TaskView, error)
	setDueDate func(id string, due *time.Time) (*task.TaskView, error)
	delete     func(string) error
}

func (f *fakeTaskPort) CreateTask(_ context.Context, req *task.CreateTaskRequest) (*task.TaskView, error) {
	return f.create(req)
}

func (f *fakeTaskPort) GetTask(_ context.Context, id string) (*task.TaskView, error) {
	return f.get(id)
}

func (f *fakeTaskPort) ListTasks(_ context.Context, req *task.ListTasksRequest) (*task.ListTasksResponse, error) {
	return f.list(req)
}

func (f *fakeTaskPort) CountTasks(_ context.Context, status string) (int, error) {
	return f.count(status)
}

func (f *fakeTaskPort) TransitionTask(_ context.Context, id, action string) (*task.TaskView, error) {
	return f.transition(id, action)
}

func (f *fakeTaskPort) SetDueDate(_ context.Context, id string, due *time.Time) (*task.TaskView, error) {
	return f.setDueDate(id, due)
}

func (f *fakeTaskPort) DeleteTask(_ context.Context, id string) error {
	return f.delete(id)
}

type fakeCategoryPort struct {
	category.CategoryPort
	create func(*category.CreateCategoryRequest) (*category.CategoryView, error)
	getByN func(string) (*category.CategoryView, error)
	exists func(string) (bool, error)
	list   func() (*category.ListCategoriesResponse, error)
}

func (f *fakeCategoryPort) CreateCategory(_ context.Context, req *category.CreateCategoryRequest) (*category.CategoryView, error) {
	return f.create(req)
}

func (f *fakeCategoryPort) GetCategoryByName(_ context.Context, name string) (*category.CategoryView, error) {
	return f.getByN(name)
}

func (f *fakeCategoryPort) CategoryExists(_ context.Context, name string) (bool, error) {
	return f.exists(name)
}

func (f *fakeCategoryPort) ListCategories(_ context.Context) (*category.ListCategoriesResponse, error) {
	return f.list()
}

type fakeActivityPort struct {
	entries []activity.Entry
}

func (f *fakeActivityPort) ListActivity(_ context.Context, limit int) (*activity.ListActivityResponse, error) {
	entries := f.entries
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return &activity.ListActivityResponse{Entries: entries, Total: len(entries)}, nil
}

func newTestApp(tasks *fakeTaskPort, categories *fakeCategoryPort, act *fakeActivityPort) *fiber.App {
	m := NewModule(Config{AppName: "test", Port: 8080}, &mockLogger{})
	m.tasks = tasks
	m.categories = categories
	m.activity = act
	return m.newApp()
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp, decoded
}

func sampleView() *task.TaskView {
	created := time.Date(2026, 4, 1, 10, 30, 0, 0, time.Local)
	due := time.Date(2026, 4, 5, 18, 0, 0, 0, time.Local)
	return &task.TaskView{
		ID:            "t1",
		Title:         "Buy milk",
		Status:        "PENDING",
		Priority:      "MEDIUM",
		PriorityLevel: 2,
		DueDate:       &due,
		CategoryID:    "c1",
		CategoryName:  "Work",
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func TestCreateTask(t *testing.T) {
	var got *task.CreateTaskRequest
	tasks := &fakeTaskPort{create: func(req *task.CreateTaskRequest) (*task.TaskView, error) {
		got = req
		return sampleView(), nil
	}}
	app := newTestApp(tasks, &fakeCategoryPort{}, &fakeActivityPort{})

	resp, body := do(t, app, http.MethodPost, "/api/v1/tasks",
		`{"title":"Buy milk","priority":"HIGH","dueDate":"2026-04-05T18:00","categoryId":"c1"}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NotNil(t, got)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "HIGH", got.Priority)
	assert.Equal(t, "c1", got.CategoryID)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, 18, got.DueDate.Hour())

	assert.Equal(t, "t1", body["id"])
	assert.Equal(t, "2026-04-05T18:00:00", body["dueDate"])
	assert.Equal(t, "2026-04-01T10:30:00", body["createdAt"])
	assert.Equal(t, "Work", body["categoryName"])
	assert.Equal(t, float64(2), body["priorityLevel"])
}

func TestCreateTask_Errors(t *testing.T) {
	tasks := &fakeTaskPort{create: func(*task.CreateTaskRequest) (*task.TaskView, error) {
		return nil, apperr.Validation([]string{
			"Task title is required and cannot be empty",
			"Task title cannot exceed 200 characters (current: 0)",
		})
	}}
	app := newTestApp(tasks, &fakeCategoryPort{}, &fakeActivityPort{})

	t.Run("validation", func(t *testing.T) {
		resp, body := do(t, app, http.MethodPost, "/api/v1/tasks", `{"title":""}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "validation", body["error"])
		assert.Len(t, body["details"], 2)
	})

	t.Run("bad date", func(t *testing.T) {
		resp, body := do(t, app, http.MethodPost, "/api/v1/tasks", `{"title":"x","dueDate":"tomorrow"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid_argument", body["error"])
		assert.Contains(t, body["message"], "Invalid date-time format")
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, body := do(t, app, http.MethodPost, "/api/v1/tasks", `{"title":`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid_argument", body["error"])
	})
}

func TestGetTask_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"not found", apperr.TaskNotFound("t9"), fiber.StatusNotFound, "not_found"},
		{"invalid", apperr.InvalidArgument("Task ID cannot be null or empty"), fiber.StatusBadRequest, "invalid_argument"},
		{"duplicate", apperr.Duplicate(apperr.EntityCategory, "Work"), fiber.StatusConflict, "duplicate"},
		{"transport", io.ErrUnexpectedEOF, fiber.StatusInternalServerError, "internal"},
		{"timeout", context.DeadlineExceeded, fiber.StatusGatewayTimeout, "timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := &fakeTaskPort{get: func(string) (*task.TaskView, error) { return nil, tt.err }}
			app := newTestApp(tasks, &fakeCategoryPort{}, &fakeActivityPort{})

			resp, body := do(t, app, http.MethodGet, "/api/v1/tasks/t9", "")
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.kind, body["error"])
		})
	}
}

func TestFixedTaskRoutesAreNotIDs(t *testing.T) {
	var (
		requests  []task.ListTasksRequest
		getCalled bool
	)
	tasks := &fakeTaskPort{
		list: func(req *task.ListTasksRequest) (*task.ListTasksResponse, error) {
			requests = append(requests, *req)
			return &task.ListTasksResponse{Tasks: []task.TaskView{*sampleView()}, Total: 1}, nil
		},
		get: func(string) (*task.TaskView, error) {
			getCalled = true
			return sampleView(), nil
		},
	}
	app := newTestApp(tasks, &fakeCategoryPort{}, &fakeActivityPort{})

	for _, path := range []string{
		"/api/v1/tasks/starred",
		"/api/v1/tasks/overdue",
		"/api/v1/tasks/search?q=milk",
		"/api/v1/tasks/status/completed",
		"/api/v1/tasks/priority/HIGH",
	} {
		resp, body := do(t, app, http.MethodGet, path, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Equal(t, float64(1), body["total"], path)
	}

	assert.False(t, getCalled, "fixed paths must not reach GET /tasks/:id")
	require.Len(t, requests, 5)
	assert.True(t, requests[0].Starred)
	assert.True(t, requests[1].Overdue)
	assert.Equal(t, "milk", requests[2].Query)
	assert.Equal(t, "completed", requests[3].Status)
	assert.Equal(t, "HIGH", requests[4].Priority)
}

func TestListTasks_Filters(t *testing.T) {
	var got task.ListTasksRequest
	tasks := &fakeTaskPort{list: func(req *task.ListTasksRequest) (*task.ListTasksResponse, error) {
		got = *req
		return &task.ListTasksResponse{Tasks: []task.TaskView{}}, nil
	}}
	app := newTestApp(tasks, &fakeCategoryPort{}, &fakeActivityPort{})

	resp, body := do(t, app, http.MethodGet, "/api/v1/tasks?categoryId=c1&dueFrom=2026-01-01T00:00:00&dueTo=2026-01-31T23:59", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["total"])
	assert.Equal(t, "c1", got.CategoryID)
	require.NotNil(t, got.DueFrom)
	require.NotNil(t, got.DueTo)
	assert.Equal(t, 31, got.DueTo.Day())

	resp, _ = do(t, app, http.MethodGet, "/api/v1/tasks?dueFrom=yesterday", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCountAndTransitions(t *testing.T) {
	var actions []string
	tasks := &fakeTaskPort{
		count: func(status string) (int, error) {
			if status == "PENDING" {
				return 3, nil
			}
			return 7, nil
		},
		transition: func(id, action string) (*task.TaskView, error) {
			actions = append(actions, action)
			return sampleView(), nil
		},
	}
	app := newTestApp(tasks, &fakeCategoryPort{}, &fakeActivityPort{})

	_, body := do(t, app, http.MethodGet, "/api/v1/tasks/count?status=PENDING", "")
	assert.Equal(t, float64(3), body["count"])
	_, body = do(t, app, http.MethodGet, "/api/v1/tasks/count", "")
	assert.Equal(t, float64(7), body["count"])

	for _, action := range []string{"complete", "start", "cancel", "star"} {
		resp, _ := do(t, app, http.MethodPost, "/api/v1/tasks/t1/"+action, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, []string{task.ActionComplete, task.ActionStart, task.ActionCancel, task.ActionToggleStar}, actions)
}

func TestSetDueDate_NullClears(t *testing.T) {
	var calls []*time.Time
	tasks := &fakeTaskPort{setDueDate: func(_ string, due *time.Time) (*task.TaskView, error) {
		calls = append(calls, due)
		return sampleView(), nil
	}}
	app := newTestApp(tasks, &fakeCategoryPort{}, &fakeActivityPort{})

	resp, _ := do(t, app, http.MethodPut, "/api/v1/tasks/t1/due-date", `{"dueDate":"2026-06-01T09:00:00"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = do(t, app, http.MethodPut, "/api/v1/tasks/t1/due-date", `{"dueDate":null}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, calls, 2)
	require.NotNil(t, calls[0])
	assert.Equal(t, time.June, calls[0].Month())
	assert.Nil(t, calls[1])
}

func TestDeleteTask(t *testing.T) {
	tasks := &fakeTaskPort{delete: func(id string) error {
		if id == "t1" {
			return nil
		}
		return apperr.TaskNotFound(id)
	}}
	app := newTestApp(tasks, &fakeCategoryPort{}, &fakeActivityPort{})

	resp, _ := do(t, app, http.MethodDelete, "/api/v1/tasks/t1", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, body := do(t, app, http.MethodDelete, "/api/v1/tasks/t2", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found with ID: t2", body["message"])
}

func TestCategoryRoutes(t *testing.T) {
	now := time.Now()
	categories := &fakeCategoryPort{
		create: func(req *category.CreateCategoryRequest) (*category.CategoryView, error) {
			if req.Name == "Work" {
				return nil, apperr.Duplicate(apperr.EntityCategory, "Work")
			}
			return &category.CategoryView{ID: "c2", Name: req.Name, Color: req.Color, CreatedAt: now, UpdatedAt: now}, nil
		},
		getByN: func(name string) (*category.CategoryView, error) {
			return &category.CategoryView{ID: "c3", Name: name, CreatedAt: now, UpdatedAt: now}, nil
		},
		exists: func(name string) (bool, error) { return name == "Work", nil },
	}
	app := newTestApp(&fakeTaskPort{}, categories, &fakeActivityPort{})

	resp, body := do(t, app, http.MethodPost, "/api/v1/categories", `{"name":"Home","color":"#00FF00"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "#00FF00", body["color"])

	resp, body = do(t, app, http.MethodPost, "/api/v1/categories", `{"name":"Work"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Category already exists: Work", body["message"])

	_, body = do(t, app, http.MethodGet, "/api/v1/categories/exists?name=Work", "")
	assert.Equal(t, true, body["exists"])

	_, body = do(t, app, http.MethodGet, "/api/v1/categories/name/My%20Work", "")
	assert.Equal(t, "My Work", body["name"])
}

func TestActivityAndHealth(t *testing.T) {
	act := &fakeActivityPort{entries: []activity.Entry{
		{Type: "task_created", EntityID: "t1", Message: "Task 'x' created", Timestamp: time.Now()},
		{Type: "category_created", EntityID: "c1", Message: "Category 'y' created", Timestamp: time.Now()},
	}}
	tasks := &fakeTaskPort{count: func(string) (int, error) { return 4, nil }}
	categories := &fakeCategoryPort{list: func() (*category.ListCategoriesResponse, error) {
		return &category.ListCategoriesResponse{Total: 2}, nil
	}}
	app := newTestApp(tasks, categories, act)

	_, body := do(t, app, http.MethodGet, "/api/v1/activity?limit=1", "")
	assert.Equal(t, float64(1), body["total"])

	resp, body := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
	details := body["details"].(map[string]any)
	assert.Equal(t, float64(4), details["tasks"])
	assert.Equal(t, float64(2), details["categories"])
}

func TestParseDateTime(t *testing.T) {
	for _, value := range []string{"2026-02-03T04:05:06", "2026-02-03T04:05", "2026-02-03T04:05:06Z"} {
		got, err := ParseDateTime(value)
		require.NoError(t, err, value)
		assert.Equal(t, 3, got.Day(), value)
	}

	_, err := ParseDateTime("03/02/2026")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestModule_Basics(t *testing.T) {
	m := NewModule(Config{Port: 8080}, &mockLogger{})
	assert.Equal(t, "api", m.Name())
	assert.Equal(t, []string{"task", "category", "activity"}, m.Dependencies())
	assert.Error(t, m.Start(context.Background()), "start requires ports")
	assert.False(t, m.Health(context.Background()).Healthy)
	assert.NoError(t, m.Stop(context.Background()))
}
