package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"time"

	"laporan_zakat/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func testSession(role entities.Role) *entities.Session {
	return entities.NewSession("tok-1", entities.Identity{OperatorCode: "R001", Name: "Relawan Satu", Role: role}, time.Now())
}

// withSession stands in for RequireSession in handler tests.
func withSession(s *entities.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionContextKey, s)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
