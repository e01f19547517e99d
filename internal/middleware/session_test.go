package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wisdomcircle/internal/reqctx"
	"wisdomcircle/internal/utils"
)

func callProtected(t *testing.T, jwtSecret string, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = reqctx.GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequireAdmin(jwtSecret)(next).ServeHTTP(rec, req)
	return rec, gotUserID
}

func TestRequireAdmin_NoCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/admin/stats", nil)

	rec, _ := callProtected(t, "secret", req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("без cookie ожидался 401: %d", rec.Code)
	}
}

func TestRequireAdmin_BadToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})

	rec, _ := callProtected(t, "secret", req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("мусорный токен должен давать 401: %d", rec.Code)
	}
}

func TestRequireAdmin_WrongSecret(t *testing.T) {
	token, err := utils.GenerateSessionToken("other-secret", "507f1f77bcf86cd799439011", time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	rec, _ := callProtected(t, "secret", req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("чужая подпись должна давать 401: %d", rec.Code)
	}
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	token, err := utils.GenerateSessionToken("secret", "507f1f77bcf86cd799439011", time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	rec, userID := callProtected(t, "secret", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("валидный токен должен пропускаться: %d", rec.Code)
	}
	if userID != "507f1f77bcf86cd799439011" {
		t.Fatalf("user_id должен попадать в контекст: %q", userID)
	}
}

func TestRequireAdmin_OptionsBypass(t *testing.T) {
	req := httptest.NewRequest("OPTIONS", "/api/admin/stats", nil)

	rec, _ := callProtected(t, "secret", req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight должен проходить без cookie: %d", rec.Code)
	}
}
