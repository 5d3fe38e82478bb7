package pagination

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCursor_RoundTrip(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	created := time.Date(2024, 1, 16, 9, 30, 0, 123000000, loc)
	id := uuid.New()

	encoded := After(id, created).Encode()
	for _, in := range []string{encoded, encoded + "=="} {
		got, err := DecodeCursor(in)
		if err != nil {
			t.Fatalf("DecodeCursor(%q) error = %v", in, err)
		}
		if got.ID != id || !got.CreatedAt.Equal(created) {
			t.Errorf("DecodeCursor(%q) = %+v, want id %s at %s", in, got, id, created)
		}
		if got.CreatedAt.Location() != time.UTC {
			t.Errorf("CreatedAt location = %v, want UTC", got.CreatedAt.Location())
		}
	}
}

func TestDecodeCursor_Empty(t *testing.T) {
	got, err := DecodeCursor("")
	if err != nil || got != nil {
		t.Fatalf("DecodeCursor(\"\") = %+v, %v; want nil, nil", got, err)
	}
}

func TestDecodeCursor_Invalid(t *testing.T) {
	enc := base64.RawURLEncoding.EncodeToString

	tests := []struct {
		name string
		in   string
	}{
		{"not base64", "!!"},
		{"not json", enc([]byte("not json"))},
		{"missing id", enc([]byte(`{"created_at":"2024-01-16T00:00:00Z"}`))},
		{"missing time", enc([]byte(`{"id":"` + uuid.NewString() + `"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.in)
			if !errors.Is(err, ErrInvalidCursor) {
				t.Errorf("DecodeCursor() error = %v, want ErrInvalidCursor", err)
			}
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-10, DefaultLimit},
		{1, 1},
		{50, 50},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}

	for _, tt := range tests {
		if got := NormalizeLimit(tt.in); got != tt.want {
			t.Errorf("NormalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
