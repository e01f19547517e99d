package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wisdomcircle/internal/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Мок-сервис (заглушка)
type stubArticleService struct {
	lastApproved *bool
}

func (s *stubArticleService) Submit(_ context.Context, _ models.SubmitArticleRequest) (*models.Article, error) {
	return &models.Article{}, nil
}

func (s *stubArticleService) ListPublic(_ context.Context, _ int) ([]*models.Article, error) {
	return nil, nil
}

func (s *stubArticleService) ListAdmin(_ context.Context, _ *bool) ([]*models.Article, error) {
	return nil, nil
}

func (s *stubArticleService) ViewDetail(_ context.Context, _ string) (*models.Article, error) {
	return &models.Article{}, nil
}

func (s *stubArticleService) SetApproved(_ context.Context, _ string, approved bool) (*models.Article, error) {
	s.lastApproved = &approved
	return &models.Article{ID: primitive.NewObjectID(), Approved: approved}, nil
}

func (s *stubArticleService) Delete(_ context.Context, _ string) error { return nil }

func (s *stubArticleService) Stats(_ context.Context) (*models.ArticleStats, error) {
	return &models.ArticleStats{}, nil
}

func approveRouter(svc *stubArticleService) *mux.Router {
	h := NewArticleHandler(svc)
	router := mux.NewRouter()
	router.HandleFunc("/api/admin/articles/{id}/approve", h.Approve).Methods("PUT")
	return router
}

func TestApprove_EmptyBodyDefaultsTrue(t *testing.T) {
	svc := &stubArticleService{}
	router := approveRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/api/admin/articles/000000000000000000000000/approve", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("PUT без тела должен одобрять: %d (%s)", rec.Code, rec.Body.String())
	}
	if svc.lastApproved == nil || !*svc.lastApproved {
		t.Fatal("без тела approved должен по умолчанию быть true")
	}
}

func TestApprove_ExplicitFalse(t *testing.T) {
	svc := &stubArticleService{}
	router := approveRouter(svc)

	body := strings.NewReader(`{"approved":false}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/api/admin/articles/000000000000000000000000/approve", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("код ответа: %d", rec.Code)
	}
	if svc.lastApproved == nil || *svc.lastApproved {
		t.Fatal("явный approved=false должен передаваться сервису")
	}
}

func TestApprove_InvalidJSON(t *testing.T) {
	svc := &stubArticleService{}
	router := approveRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/api/admin/articles/000000000000000000000000/approve", strings.NewReader("{broken")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("битый JSON должен давать 400: %d", rec.Code)
	}
	if svc.lastApproved != nil {
		t.Fatal("при битом JSON сервис не должен вызываться")
	}
}
