package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("настроенный источник пробрасывается в заголовок", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CORS("https://app.llbeautybar.example")(next).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/services", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://app.llbeautybar.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("пустой источник разрешает всё", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CORS("")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/services", nil))

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight завершается без вызова обработчика", func(t *testing.T) {
		called := false
		rec := httptest.NewRecorder()
		CORS("https://app.llbeautybar.example")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		})).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/services", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, called)
	})
}
