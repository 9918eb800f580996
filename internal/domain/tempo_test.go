package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTempo(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"3,1,1", "3 ⬇ | 1 ⏸ | 1 ⬆"},
		{" 4 , 0 , 2 ", "4 ⬇ | 0 ⏸ | 2 ⬆"},
		{"311", "3 ⬇ | 1 ⏸ | 1 ⬆"},
		{"", NoTempo},
		{"3,1", NoTempo},
		{"3,1,1,1", NoTempo},
		{"31", NoTempo},
		{"3a1", NoTempo},
		{"3111", NoTempo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTempo(tc.raw), "raw=%q", tc.raw)
	}
}
