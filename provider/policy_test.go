package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.True(t, Policy("").Empty())
		assert.True(t, Policy(";;").Empty())
		assert.False(t, Policy("AAD").Empty())
	})

	t.Run("Satisfied", func(t *testing.T) {
		policy := Policy("AAD;MSA")
		for _, test := range []struct {
			used   string
			expect bool
		}{
			{used: "external.MSA", expect: true},
			{used: "external.AAD", expect: true},
			{used: "external.msa", expect: true},
			{used: "MSA", expect: true},
			{used: "password", expect: false},
			{used: "external.Google", expect: false},
		} {
			assert.Equal(t, test.expect, policy.Satisfied(test.used), "used=%s", test.used)
		}
	})

	t.Run("First", func(t *testing.T) {
		assert.Equal(t, "AAD", Policy("AAD;MSA").First())
		assert.Equal(t, "AAD", Policy(";AAD;MSA").First())
		assert.Equal(t, "", Policy("").First())
	})
}
