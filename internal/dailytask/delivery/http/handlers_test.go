package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"holistic-daily/internal/dailytask"
	"holistic-daily/internal/middleware"
	"holistic-daily/internal/model"
	"holistic-daily/pkg/log"
	"holistic-daily/pkg/response"
)

type mockUseCase struct {
	tasks      []model.Task
	err        error
	completion dailytask.SetCompletionInput
	feedback   dailytask.SetFeedbackInput
	prefs      model.UserPreferences
	when       string
}

func (m *mockUseCase) Today(context.Context, model.Scope) ([]model.Task, error) {
	return m.tasks, m.err
}

func (m *mockUseCase) ByDate(_ context.Context, _ model.Scope, when string) (dailytask.ByDateOutput, error) {
	m.when = when
	return dailytask.ByDateOutput{Date: "2024-04-30", Tasks: m.tasks}, m.err
}

func (m *mockUseCase) SetCompletion(_ context.Context, _ model.Scope, in dailytask.SetCompletionInput) error {
	m.completion = in
	return m.err
}

func (m *mockUseCase) SetFeedback(_ context.Context, _ model.Scope, in dailytask.SetFeedbackInput) error {
	m.feedback = in
	return m.err
}

func (m *mockUseCase) Preferences(context.Context, model.Scope) (model.UserPreferences, error) {
	return m.prefs, m.err
}

func (m *mockUseCase) Share(_ context.Context, _ model.Scope, id string) (dailytask.ShareOutput, error) {
	return dailytask.ShareOutput{TaskID: id, Text: "shared"}, m.err
}

func newTestContext(method, target, body string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	middleware.SetScope(c, model.Scope{UserID: "alice"})
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) response.Resp {
	t.Helper()
	resp := response.Resp{Data: data}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %s: %v", w.Body.String(), err)
	}
	return resp
}

func TestToday(t *testing.T) {
	uc := &mockUseCase{tasks: []model.Task{
		{ID: "1", Title: "Bowl", Category: model.CategoryBelly, Date: "2024-05-01", Completed: true},
		{ID: "2", Title: "Walk", Category: model.CategoryBody, Date: "2024-05-01"},
	}}
	h := New(log.NewNop(), uc)

	c, w := newTestContext(http.MethodGet, "/api/v1/tasks/today", "", nil)
	h.Today(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var data tasksResp
	decode(t, w, &data)
	if len(data.Tasks) != 2 || data.CompletedCount != 1 || data.Date != "2024-05-01" {
		t.Errorf("unexpected body %+v", data)
	}
	if data.Tasks[0].Label != "Nourish your belly" {
		t.Errorf("label = %q", data.Tasks[0].Label)
	}
}

func TestToday_LoadFailure(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{err: dailytask.ErrLoadTasks})

	c, w := newTestContext(http.MethodGet, "/api/v1/tasks/today", "", nil)
	h.Today(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if resp := decode(t, w, nil); resp.Message != "Failed to load today's tasks. Please try again." {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestByDate(t *testing.T) {
	uc := &mockUseCase{}
	h := New(log.NewNop(), uc)

	c, w := newTestContext(http.MethodGet, "/api/v1/tasks?date=yesterday", "", nil)
	h.ByDate(c)

	if w.Code != http.StatusOK || uc.when != "yesterday" {
		t.Errorf("status = %d, when = %q", w.Code, uc.when)
	}

	uc.err = dailytask.ErrInvalidDate
	c, w = newTestContext(http.MethodGet, "/api/v1/tasks?date=blue-moon", "", nil)
	h.ByDate(c)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestSetCompletion(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "complete", body: `{"completed":true}`, wantStatus: http.StatusOK},
		{name: "uncomplete", body: `{"completed":false}`, wantStatus: http.StatusOK},
		{name: "missing flag", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "unknown task", body: `{"completed":true}`, ucErr: dailytask.ErrTaskNotFound, wantStatus: http.StatusNotFound},
		{name: "store failure", body: `{"completed":true}`, ucErr: dailytask.ErrUpdateTask, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.ucErr}
			h := New(log.NewNop(), uc)

			c, w := newTestContext(http.MethodPatch, "/api/v1/tasks/t1/completion", tt.body, gin.Params{{Key: "id", Value: "t1"}})
			h.SetCompletion(c)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.name == "complete" && (!uc.completion.Completed || uc.completion.TaskID != "t1") {
				t.Errorf("unexpected input %+v", uc.completion)
			}
		})
	}
}

func TestSetFeedback(t *testing.T) {
	uc := &mockUseCase{}
	h := New(log.NewNop(), uc)

	c, w := newTestContext(http.MethodPut, "/api/v1/tasks/t1/feedback", `{"feedback":"Feeling: Energized"}`, gin.Params{{Key: "id", Value: "t1"}})
	h.SetFeedback(c)

	if w.Code != http.StatusOK || uc.feedback.Feedback != "Feeling: Energized" {
		t.Errorf("status = %d, input = %+v", w.Code, uc.feedback)
	}
}

func TestPreferences_Absent(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{})

	c, w := newTestContext(http.MethodGet, "/api/v1/preferences", "", nil)
	h.Preferences(c)

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"preferences":null`) {
		t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestShare(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{})

	c, w := newTestContext(http.MethodGet, "/api/v1/tasks/t1/share", "", gin.Params{{Key: "id", Value: "t1"}})
	h.Share(c)

	var data shareResp
	decode(t, w, &data)
	if data.TaskID != "t1" || data.Text != "shared" {
		t.Errorf("unexpected body %+v", data)
	}
}
