package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Winter Jacket":         "winter-jacket",
		"  Spaced  Out  ":       "spaced-out",
		"Déjà Vu":               "déjà-vu",
		"100% Cotton T-Shirt":   "100-cotton-t-shirt",
		"trailing punctuation!": "trailing-punctuation",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}
