package handler_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret-0123"

var alice = entities.User{ID: "u1", Email: "alice@example.com"}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type initer interface {
	Init(r chi.Router)
}

// serve выполняет запрос через chi роутер; user == nil означает запрос без токена.
func serve(t *testing.T, h initer, method, path, body string, user *entities.User) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if user != nil {
		token, err := middleware.IssueToken(testSecret, *user, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
