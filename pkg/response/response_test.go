package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-todo-manager/pkg/errors"
	"ai-todo-manager/pkg/response"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := newTestContext(t)

	response.OK(c, map[string]string{"title": "우유 사기"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["title"] != "우유 사기" {
		t.Errorf("payload not passed through as-is: %v", body)
	}
}

func TestError(t *testing.T) {
	t.Run("HTTPError carries its own status", func(t *testing.T) {
		c, w := newTestContext(t)

		response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, "quota exceeded"))

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}

		var body response.ErrResp
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body.Error != "quota exceeded" {
			t.Errorf("unexpected error message: %q", body.Error)
		}
	})

	t.Run("Plain error defaults to 500", func(t *testing.T) {
		c, w := newTestContext(t)

		response.Error(c, errors.New("boom"))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
