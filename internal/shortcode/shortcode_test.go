package shortcode

import (
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenRegex = regexp.MustCompile(`^[A-Za-z0-9\-_]{6}$`)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		id   int32
		want string
	}{
		{name: "zero", id: 0, want: "AAAAAA"},
		{name: "one", id: 1, want: "AQAAAA"},
		{name: "minus one", id: -1, want: "_____w"},
		{name: "max int32", id: math.MaxInt32, want: "____fw"},
		{name: "min int32", id: math.MinInt32, want: "AAAAgA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.id))
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	ids := []int32{0, 1, -1, math.MinInt32, math.MaxInt32, 255, 256, 65536}
	for range 1000 {
		ids = append(ids, gofakeit.Int32())
	}

	for _, id := range ids {
		token := Encode(id)
		require.Regexp(t, tokenRegex, token, "id %d", id)

		got, err := Decode(token)
		require.NoError(t, err, "id %d token %s", id, token)
		require.Equal(t, id, got)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not base64", token: "!!!"},
		{name: "single char", token: "A"},
		{name: "six invalid chars", token: "!!!!!!"},
		{name: "std alphabet", token: "////+w"},
		{name: "padded", token: "AQAAAA=="},
		{name: "non canonical tail", token: "AQAAAB"},
		{name: "unknown tail bits", token: "ZZZZZZ"},
		{name: "too long", token: "AQAAAAAA"},
		{name: "newline inside", token: "AQA\nAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			require.Error(t, err)

			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr))
			assert.ErrorIs(t, err, ErrMalformedToken)
			assert.Equal(t, tt.token, decodeErr.Token)
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	for i := range b.N {
		_ = Encode(int32(i)) //nolint:gosec
	}
}

func BenchmarkDecode(b *testing.B) {
	token := Encode(math.MaxInt32)
	for range b.N {
		if _, err := Decode(token); err != nil {
			b.Fatal(err)
		}
	}
}
