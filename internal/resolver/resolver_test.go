package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlink/internal/shortcode"
)

func mapLookup(data map[int32]string, calls *int) Lookup {
	return func(_ context.Context, id int32) (string, bool, error) {
		*calls++
		url, ok := data[id]
		return url, ok, nil
	}
}

func TestResolve(t *testing.T) {
	const (
		key    int32 = 42
		target       = "https://example.com/page"
	)
	data := map[int32]string{key: target}

	tests := []struct {
		name      string
		segment   string
		want      Outcome
		wantCalls int
	}{
		{name: "hit", segment: shortcode.Encode(key), want: Found(target), wantCalls: 1},
		{name: "absent key", segment: shortcode.Encode(key + 1), want: NotFound, wantCalls: 1},
		{name: "malformed", segment: "!!!", want: NotFound, wantCalls: 0},
		{name: "empty", segment: "", want: NotFound, wantCalls: 0},
		{name: "unknown token", segment: "ZZZZZZ", want: NotFound, wantCalls: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			got, err := Resolve(t.Context(), tt.segment, mapLookup(data, &calls))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestResolve_LookupFailure(t *testing.T) {
	storageErr := errors.New("connection refused")
	lookup := func(_ context.Context, _ int32) (string, bool, error) {
		return "", false, storageErr
	}

	got, err := Resolve(t.Context(), shortcode.Encode(1), lookup)
	require.ErrorIs(t, err, storageErr)
	assert.Equal(t, NotFound, got)
}

func TestLastSegment(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/AQAAAA", want: "AQAAAA"},
		{path: "/custom/AQAAAA", want: "AQAAAA"},
		{path: "/a/b/c/", want: ""},
		{path: "/", want: ""},
		{path: "", want: ""},
		{path: "AQAAAA", want: "AQAAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, LastSegment(tt.path))
		})
	}
}
