package linking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeMessage(t *testing.T) {
	for _, test := range []struct {
		message string
		expect  string
	}{
		{message: "plain message", expect: "plain message"},
		{message: "John Doe <john@d.com>", expect: "John Doe %3Cjohn@d.com%3E"},
		{message: "<<>>", expect: "%3C%3C%3E%3E"},
		{message: "", expect: ""},
	} {
		assert.Equal(t, test.expect, SanitizeMessage(test.message))
	}
}
