package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReceiptDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"04/12/2024", "2024-04-12", true},
		{"04/12/24", "2024-04-12", true},
		{"04-12-2024", "2024-04-12", true},
		{"04-12-24", "2024-04-12", true},
		{"2024-04-12", "2024-04-12", true},
		{"13/45/2024", "", false},
		{"yesterday", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReceiptDate(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
			assert.Equal(t, time.UTC, got.Location())
			assert.Zero(t, got.Hour())
		})
	}
}

func TestParseYMD(t *testing.T) {
	got, err := ParseYMD("2024-04-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseYMD("04/12/2024")
	assert.Error(t, err)
}
