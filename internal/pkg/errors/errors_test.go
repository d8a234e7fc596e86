package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "classified error",
			err:      NotFound("trip"),
			expected: CodeNotFound,
		},
		{
			name:     "wrapped classified error",
			err:      fmt.Errorf("creating booking: %w", CapacityExceeded(2)),
			expected: CodeCapacityExceeded,
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("connection refused"),
			expected: CodeInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CodeOf(tc.err))
		})
	}
}

func TestCapacityExceededCarriesRemaining(t *testing.T) {
	err := fmt.Errorf("creating booking: %w", CapacityExceeded(3))

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, 3, appErr.Remaining)
	assert.Contains(t, appErr.Message, "3 seats available")
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("bad connection")
	err := Internal("query failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query failed")
	assert.Contains(t, err.Error(), "bad connection")
}
