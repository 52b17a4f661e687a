package converting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrap(t *testing.T) {
	assert.Equal(t, "", Unwrap[string](nil))
	assert.Equal(t, "value", Unwrap(PointerToValue("value")))
	assert.Equal(t, 20, UnwrapOr(nil, 20))
	assert.Equal(t, 7, UnwrapOr(PointerToValue(7), 20))
}

func TestIsDigits(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"0", true},
		{"25000", true},
		{"", false},
		{"-5", false},
		{"+5", false},
		{" 20", false},
		{"20 ", false},
		{"1.5", false},
		{"abc", false},
	}

	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			assert.Equal(t, test.expected, IsDigits(test.value))
		})
	}
}
