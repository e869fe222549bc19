package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTime(t *testing.T) {
	want := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		src  any
	}{
		{"time", want},
		{"sqlite text", "2026-10-17 09:30:00"},
		{"sqlite text with zone", "2026-10-17 09:30:00+00:00"},
		{"bytes", []byte("2026-10-17T09:30:00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			require.NoError(t, scanTime{&got}.Scan(tt.src))
			assert.True(t, want.Equal(got), got)
		})
	}
}

func TestScanTime_Errors(t *testing.T) {
	var got time.Time
	assert.Error(t, scanTime{&got}.Scan(42))
	assert.Error(t, scanTime{&got}.Scan("yesterday"))
}
