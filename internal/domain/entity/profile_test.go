package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{xp: 0, want: 1},
		{xp: 99, want: 1},
		{xp: 100, want: 2},
		{xp: 250, want: 3},
		{xp: -10, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestNewReferralCode(t *testing.T) {
	code := NewReferralCode()
	assert.True(t, strings.HasPrefix(code, "AV-"))
	assert.Len(t, code, 11)
	assert.Equal(t, strings.ToUpper(code), code)

	// Codes are random; two in a row should differ.
	assert.NotEqual(t, code, NewReferralCode())
}
