package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"9000", 9000, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"99999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"/items/123":            "/items/:id",
		"/items/123/":           "/items/:id",
		"/items/7?x=1":          "/items/:id",
		"/items/source/COPE":    "/items/source/:source",
		"/summaries/5":          "/summaries/:id",
		"/items":                "/items",
		"/items/fetch":          "/items/fetch",
		"/items/groups/resolve": "/items/groups/resolve",
		"/ingest/refresh":       "/ingest/refresh",
		"/":                     "/",
		"/unknown/9":            "/unknown/9",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizePath(in), in)
	}
}
