package summary_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/handler/http/summary"
	"github.com/puntadelverde-srpm/srpm/internal/infra/adapter/persistence/memory"
	sumUC "github.com/puntadelverde-srpm/srpm/internal/usecase/summary"
)

func setup(t *testing.T, existing ...string) (*http.ServeMux, *memory.SummaryRepo) {
	t.Helper()
	repo := memory.NewSummaryRepo()
	for _, h := range existing {
		require.NoError(t, repo.Save(context.Background(), &entity.Summary{Headline: h, Body: "body " + h}))
	}
	mux := http.NewServeMux()
	summary.Register(mux, sumUC.NewService(repo))
	return mux, repo
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func errorOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"]
}

/* ───────── read ───────── */

func TestList(t *testing.T) {
	mux, _ := setup(t, "a", "b")
	rr := do(mux, http.MethodGet, "/summaries", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"headline":"a","body":"body a"},{"id":2,"headline":"b","body":"body b"}]`, rr.Body.String())
}

func TestList_Empty(t *testing.T) {
	mux, _ := setup(t)
	rr := do(mux, http.MethodGet, "/summaries", "")
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGet(t *testing.T) {
	mux, _ := setup(t, "a")

	rr := do(mux, http.MethodGet, "/summaries/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"headline":"a","body":"body a"}`, rr.Body.String())

	rr = do(mux, http.MethodGet, "/summaries/42", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, sumUC.ErrSummaryNotFound.Error(), errorOf(t, rr))

	rr = do(mux, http.MethodGet, "/summaries/-1", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

/* ───────── write ───────── */

func TestCreate(t *testing.T) {
	mux, repo := setup(t, "existing")

	rr := do(mux, http.MethodPost, "/summaries", `{"id":77,"headline":"nuevo","body":"texto"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var got summary.DTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(2), got.ID)
	assert.Equal(t, "nuevo", got.Headline)

	stored, err := repo.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "texto", stored.Body)
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed json", `{"headline":`, "invalid request body"},
		{"missing headline", `{"body":"x"}`, "validation error on field 'headline': is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := setup(t)
			rr := do(mux, http.MethodPost, "/summaries", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantMsg, errorOf(t, rr))
		})
	}
}

func TestUpdate(t *testing.T) {
	mux, repo := setup(t, "old")

	rr := do(mux, http.MethodPut, "/summaries/1", `{"headline":"new","body":"nb"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"headline":"new","body":"nb"}`, rr.Body.String())

	stored, _ := repo.Get(context.Background(), 1)
	assert.Equal(t, "new", stored.Headline)

	rr = do(mux, http.MethodPut, "/summaries/9", `{"headline":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(mux, http.MethodPut, "/summaries/1", `{"headline":""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDelete(t *testing.T) {
	mux, repo := setup(t, "a", "b")

	rr := do(mux, http.MethodDelete, "/summaries/1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = do(mux, http.MethodDelete, "/summaries/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	left, _ := repo.List(context.Background())
	require.Len(t, left, 1)
	assert.Equal(t, "b", left[0].Headline)
}
