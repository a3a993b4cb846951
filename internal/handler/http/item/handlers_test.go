package item_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/handler/http/item"
	"github.com/puntadelverde-srpm/srpm/internal/infra/adapter/persistence/memory"
	"github.com/puntadelverde-srpm/srpm/internal/repository"
	itemUC "github.com/puntadelverde-srpm/srpm/internal/usecase/item"
)

/* ───────── helpers ───────── */

func newMux(t *testing.T, items ...*entity.Item) *http.ServeMux {
	t.Helper()
	repo := memory.NewItemRepo()
	for _, it := range items {
		require.NoError(t, repo.Save(context.Background(), it))
	}
	mux := http.NewServeMux()
	item.Register(mux, itemUC.NewService(repo))
	return mux
}

func seed() []*entity.Item {
	return []*entity.Item{
		{Source: "COPE", Title: "uno", Link: "https://cope.es/1"},
		{Source: "elDiario", Title: "dos", Link: "https://eldiario.es/2"},
		{Source: "cope", Title: "tres", Link: "https://cope.es/3"},
	}
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

type brokenRepo struct{ repository.ItemRepository }

func (brokenRepo) List(context.Context) ([]*entity.Item, error) {
	return nil, errors.New("connection reset")
}

/* ───────── list ───────── */

func TestListHandler(t *testing.T) {
	rr := do(newMux(t, seed()...), http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got []item.DTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "https://cope.es/3", got[2].Link)
}

func TestListHandler_EmptyIsArray(t *testing.T) {
	rr := do(newMux(t), http.MethodGet, "/items", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListHandler_RepoError(t *testing.T) {
	mux := http.NewServeMux()
	item.Register(mux, itemUC.NewService(brokenRepo{}))

	rr := do(mux, http.MethodGet, "/items", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection reset")
}

func TestListBySourceHandler(t *testing.T) {
	rr := do(newMux(t, seed()...), http.MethodGet, "/items/source/COPE", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got []item.DTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "uno", got[0].Title)
	assert.Equal(t, "tres", got[1].Title)
}

/* ───────── get ───────── */

func TestGetHandler(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{"found", "/items/2", http.StatusOK, `"title":"dos"`},
		{"missing", "/items/99", http.StatusNotFound, "item not found"},
		{"zero", "/items/0", http.StatusBadRequest, "invalid id"},
		{"not a number", "/items/abc", http.StatusBadRequest, "invalid id"},
	}

	mux := newMux(t, seed()...)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(mux, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

/* ───────── resolve groups ───────── */

func TestResolveGroupsHandler(t *testing.T) {
	rr := do(newMux(t, seed()...), http.MethodPost, "/items/groups/resolve", `[[1,3,99],[2],[]]`)
	require.Equal(t, http.StatusOK, rr.Code)

	var got [][]item.DTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 3)
	require.Len(t, got[0], 2)
	assert.Equal(t, int64(1), got[0][0].ID)
	assert.Equal(t, int64(3), got[0][1].ID)
	assert.Equal(t, "dos", got[1][0].Title)
	assert.Empty(t, got[2])
}

func TestResolveGroupsHandler_BadBody(t *testing.T) {
	for _, body := range []string{`{"a":1}`, `[1,2]`, `not json`} {
		rr := do(newMux(t), http.MethodPost, "/items/groups/resolve", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	rr := do(newMux(t), http.MethodDelete, "/items/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
