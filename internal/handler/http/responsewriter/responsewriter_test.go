package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_DefaultsTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	_, err := rw.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Equal(t, 5, rw.BytesWritten())
	assert.True(t, rw.Written())
}

func TestWriteHeader_OnlyFirstCallCounts(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rw.StatusCode())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestFlush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.Flush()

	assert.True(t, rec.Flushed)
	assert.True(t, rw.Written())
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Same(t, rec, Wrap(rec).Unwrap())
}
