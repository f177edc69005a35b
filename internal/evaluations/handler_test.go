package evaluations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sedrickwall/AlignedAI-sub000/internal/missions"
)

func newHistoryRouter(svc *Service, userID string, guest bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("isGuest", guest)
		c.Next()
	})
	api := r.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func TestListEvaluations(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Record(context.Background(), "user-1", "pray", missions.SourceLocal, sampleResponse()); err != nil {
		t.Fatalf("Record: %v", err)
	}

	router := newHistoryRouter(svc, "user-1", false)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Evaluations []Record `json:"evaluations"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Evaluations) != 1 {
		t.Fatalf("evaluations = %d, want 1", len(payload.Evaluations))
	}
	if payload.Evaluations[0].TaskText != "pray" {
		t.Fatalf("unexpected record: %+v", payload.Evaluations[0])
	}
}

func TestListEvaluationsGuestRejected(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	router := newHistoryRouter(svc, "guest:abc", true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.Code)
	}
}
