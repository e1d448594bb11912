package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocess(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hola mundo", "hola mundo"},
		{"@maria great match today", "@user great match today"},
		{"check this https://t.co/abc123", "check this http"},
		{"http://example.com at the start", "http at the start"},
		{"email me @ the office", "email me @ the office"}, // "@" solo no es mención
		{"@a @b http https", "@user @user http http"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Preprocess(tc.in), "input: %q", tc.in)
	}
}
