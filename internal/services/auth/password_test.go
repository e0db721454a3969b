package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Abcdef1!", true},
		{"Str0ng&Pass", true},
		{"aB3@aB3@", true},
		{"abcdefgh", false},       // no upper, digit or symbol
		{"ABCDEFG1!", false},      // no lowercase
		{"abcdefg1!", false},      // no uppercase
		{"Abcdefgh!", false},      // no digit
		{"Abcdefg1", false},       // no symbol
		{"Ab1!", false},           // too short
		{"Abcdef1#", false},       // # is outside the symbol set
		{"Abcdef1! ", false},      // space not allowed
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidPassword(tt.password), "password=%q", tt.password)
	}
}
