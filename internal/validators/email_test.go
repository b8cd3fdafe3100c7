package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailFormatValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"maria@example.com", true},
		{"jo.ao+tag@sub.example.com.br", true},
		{"sem-arroba", false},
		{"@example.com", false},
		{"maria@", false},
		{"maria@semdominio", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsEmailFormatValid(tc.email), tc.email)
	}
}
