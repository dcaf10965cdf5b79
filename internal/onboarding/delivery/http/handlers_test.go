package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holistic-daily/internal/middleware"
	"holistic-daily/internal/model"
	"holistic-daily/internal/onboarding"
	"holistic-daily/pkg/log"
)

type mockUseCase struct {
	state     onboarding.State
	err       error
	submitted onboarding.SubmitInput
	selected  onboarding.SelectInput
}

func (m *mockUseCase) Wizard(context.Context, model.Scope) (onboarding.State, error) {
	return m.state, m.err
}

func (m *mockUseCase) Select(_ context.Context, _ model.Scope, in onboarding.SelectInput) (onboarding.State, error) {
	m.selected = in
	return m.state, m.err
}

func (m *mockUseCase) Next(context.Context, model.Scope) (onboarding.State, error) {
	return m.state, m.err
}

func (m *mockUseCase) Back(context.Context, model.Scope) (onboarding.State, error) {
	return m.state, m.err
}

func (m *mockUseCase) Submit(_ context.Context, _ model.Scope, in onboarding.SubmitInput) error {
	m.submitted = in
	return m.err
}

func do(fn gin.HandlerFunc, method, body string, sc model.Scope) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/v1/onboarding", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	middleware.SetScope(c, sc)
	fn(c)
	return w
}

func TestSubmit(t *testing.T) {
	uc := &mockUseCase{}
	h := New(log.NewNop(), uc)

	w := do(h.Submit, http.MethodPost,
		`{"dietary_preferences":["vegan"],"fitness_level":"beginner","content_interests":["science"]}`,
		model.Scope{UserID: "alice"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, onboarding.SubmitInput{
		DietaryPreferences: []string{"vegan"},
		FitnessLevel:       model.FitnessBeginner,
		ContentInterests:   []string{"science"},
	}, uc.submitted)
}

func TestSubmit_UnauthenticatedRedirects(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{err: onboarding.ErrUnauthenticated})

	w := do(h.Submit, http.MethodPost, `{"dietary_preferences":["vegan"]}`, model.Scope{})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/login", body.Data["redirect"])
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "ok", body: `{"field":"dietary","value":"vegan"}`, wantStatus: http.StatusOK},
		{name: "bad field", body: `{"field":"mood","value":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown option", body: `{"field":"dietary","value":"paleo"}`, err: onboarding.ErrUnknownOption, wantStatus: http.StatusBadRequest},
		{name: "wrong step", body: `{"field":"fitness","value":"advanced"}`, err: onboarding.ErrInvalidTransition, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{state: onboarding.State{Step: onboarding.StepDiet}, err: tt.err}
			w := do(New(log.NewNop(), uc).Select, http.MethodPut, tt.body, model.Scope{SessionID: "s"})
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestNext_Submitted(t *testing.T) {
	uc := &mockUseCase{state: onboarding.State{Step: onboarding.StepSubmitted, Fitness: model.FitnessBeginner}}
	w := do(New(log.NewNop(), uc).Next, http.MethodPost, "", model.Scope{UserID: "alice", SessionID: "s"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data wizardResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.Submitted)
	assert.Equal(t, "submitted", body.Data.StepName)
	assert.Len(t, body.Data.Options.Fitness, 3)
}
