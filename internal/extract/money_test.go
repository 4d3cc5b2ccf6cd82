package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		found bool
	}{
		{"43.22", 43.22, true},
		{"$43.22", 43.22, true},
		{"TOTAL: $1,234.56", 1234.56, true},
		{"  14.35 CR", 14.35, true},
		{"43", 0, false},
		{"43.2", 0, false},
		{"", 0, false},
		{"N/A", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMoney(tt.in)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 34.44, Round2(14.35+20.09), 0.0001)
	assert.InDelta(t, 0.1, Round2(0.1+1e-9), 0.0001)
	assert.InDelta(t, 3.23, Round2(3.229999999), 0.0001)
}
