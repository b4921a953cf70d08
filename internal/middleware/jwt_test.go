package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func protectedRouter(requiredRole string, handlerRan *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", RequireAuthWithRole(requiredRole), func(c *gin.Context) {
		*handlerRan = true
		c.String(http.StatusOK, "guarded resource")
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthWithRoleRejectsWrongRoleBeforeHandler(t *testing.T) {
	var handlerRan bool
	r := protectedRouter("admin", &handlerRan)

	token, err := GenerateToken(7, "driver")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(t, r, token)
	if handlerRan {
		t.Fatal("handler ran for a driver token on an admin route")
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if strings.Contains(w.Body.String(), "guarded resource") {
		t.Fatalf("response leaked handler body: %q", w.Body.String())
	}
}

func TestRequireAuthWithRoleAllowsMatchingRole(t *testing.T) {
	var handlerRan bool
	r := protectedRouter("admin", &handlerRan)

	token, err := GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(t, r, token)
	if !handlerRan || w.Code != http.StatusOK {
		t.Fatalf("admin request: handlerRan=%v status=%d, want true/200", handlerRan, w.Code)
	}
}

func TestRequireAuthWithRoleRejectsMissingToken(t *testing.T) {
	var handlerRan bool
	r := protectedRouter("admin", &handlerRan)

	w := doRequest(t, r, "")
	if handlerRan || w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated request: handlerRan=%v status=%d, want false/401", handlerRan, w.Code)
	}
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var handlerRan bool
	r := gin.New()
	r.GET("/guarded", RequireAuth(), func(c *gin.Context) {
		handlerRan = true
		c.Status(http.StatusOK)
	})

	w := doRequest(t, r, "not-a-jwt")
	if handlerRan || w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: handlerRan=%v status=%d, want false/401", handlerRan, w.Code)
	}
}
