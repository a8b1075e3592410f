package emailaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	for _, test := range []struct {
		identity string
		expect   string
	}{
		{identity: "John Doe <john@doe.com>", expect: "john@doe.com"},
		{identity: "john@doe.com", expect: "john@doe.com"},
		{identity: "<john@doe.com>", expect: "john@doe.com"},
		{identity: "", expect: ""},
		{identity: "no brackets here", expect: "no brackets here"},
	} {
		assert.Equal(t, test.expect, Extract(test.identity))
	}
}

func TestMask(t *testing.T) {
	t.Run("Valid Addresses", func(t *testing.T) {
		for _, test := range []struct {
			email  string
			expect string
		}{
			{email: "j@d.com", expect: "j**********@d.com"},
			{email: "john@d.com", expect: "j**********n@d.com"},
			{email: "john@example.com", expect: "j**********n@example.com"},
			{email: "ab@example.com", expect: "a**********b@example.com"},
		} {
			masked, err := Mask(test.email)
			require.NoError(t, err)
			assert.Equal(t, test.expect, masked)
		}
	})

	t.Run("Invalid Addresses", func(t *testing.T) {
		for _, email := range []string{"", "no-at-sign", "@leading.com"} {
			_, err := Mask(email)
			assert.Error(t, err)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := Mask("jane@example.com")
		require.NoError(t, err)
		second, err := Mask("jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
