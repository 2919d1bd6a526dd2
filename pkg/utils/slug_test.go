package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"City Highlights", "city-highlights"},
		{"Обзорная экскурсия", "obzornaya-ekskursiya"},
		{"Стамбул: два континента!", "stambul-dva-kontinenta"},
		{"  Multiple   spaces  ", "multiple-spaces"},
		{"Top-10 beaches (2026)", "top-10-beaches-2026"},
		{"ъь", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}
