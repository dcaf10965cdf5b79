package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "holistic-daily/pkg/errors"
	"holistic-daily/pkg/response"
)

func record(t *testing.T, write func(c *gin.Context)) (int, response.Resp, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp, raw
}

func TestOK(t *testing.T) {
	code, resp, _ := record(t, func(c *gin.Context) {
		response.OK(c, map[string]string{"step_name": "fitness"})
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, response.MessageSuccess, resp.Message)
	assert.Equal(t, map[string]any{"step_name": "fitness"}, resp.Data)
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		data     map[string]any
		wantCode int
		wantErr  int
		wantMsg  string
		wantData map[string]any
	}{
		{
			name:     "plain error is a bad request",
			err:      errors.New("invalid date"),
			wantCode: http.StatusBadRequest,
			wantErr:  1,
			wantMsg:  "invalid date",
			wantData: map[string]any{},
		},
		{
			name:     "explicit data wins",
			err:      errors.New("invalid option"),
			data:     map[string]any{"field": "dietary"},
			wantCode: http.StatusBadRequest,
			wantErr:  1,
			wantMsg:  "invalid option",
			wantData: map[string]any{"field": "dietary"},
		},
		{
			name: "http error keeps status and data",
			err: pkgErrors.NewHTTPError(http.StatusUnauthorized, "Please sign in to save your preferences").
				WithData(map[string]interface{}{"redirect": "/login"}),
			wantCode: http.StatusUnauthorized,
			wantErr:  http.StatusUnauthorized,
			wantMsg:  "Please sign in to save your preferences",
			wantData: map[string]any{"redirect": "/login"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp, _ := record(t, func(c *gin.Context) {
				response.Error(c, tt.err, tt.data)
			})

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantErr, resp.ErrorCode)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Equal(t, tt.wantData, resp.Data)
		})
	}
}

func TestAbortHelpers(t *testing.T) {
	code, resp, raw := record(t, response.Unauthorized)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, http.StatusUnauthorized, resp.ErrorCode)
	assert.NotContains(t, raw, "data")

	code, resp, _ = record(t, response.TooManyRequests)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "Too many requests", resp.Message)
}
