package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, header string) (ctxID string, rr *httptest.ResponseRecorder) {
	t.Helper()
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return ctxID, rr
}

func TestMiddleware_GeneratesID(t *testing.T) {
	id, rr := serve(t, "")

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, rr.Header().Get(RequestIDHeader))
}

func TestMiddleware_PropagatesClientID(t *testing.T) {
	id, rr := serve(t, "abc-123.retry_1")

	assert.Equal(t, "abc-123.retry_1", id)
	assert.Equal(t, "abc-123.retry_1", rr.Header().Get(RequestIDHeader))
}

func TestMiddleware_ReplacesMalformedID(t *testing.T) {
	for _, bad := range []string{"has space", "line\nbreak", strings.Repeat("a", 129)} {
		id, _ := serve(t, bad)
		assert.NotEqual(t, bad, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	a, _ := serve(t, "")
	b, _ := serve(t, "")
	assert.NotEqual(t, a, b)
}

func TestFromContext_Empty(t *testing.T) {
	assert.Empty(t, FromContext(context.Background()))
	assert.Equal(t, "x", FromContext(WithRequestID(context.Background(), "x")))
}
