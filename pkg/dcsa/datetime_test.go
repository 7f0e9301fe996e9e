package dcsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDateTime(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected string
		wantErr  bool
	}{
		{
			name:     "offset passes through",
			value:    "2024-03-01T10:00:00+02:00",
			expected: "2024-03-01T10:00:00+02:00",
		},
		{
			name:     "zulu passes through",
			value:    "2024-03-01T10:00:00Z",
			expected: "2024-03-01T10:00:00Z",
		},
		{
			name:     "no offset gets Z appended",
			value:    "2024-03-01T10:00:00",
			expected: "2024-03-01T10:00:00Z",
		},
		{
			name:     "minute precision gets Z appended",
			value:    "2024-03-01T10:00",
			expected: "2024-03-01T10:00Z",
		},
		{
			name:    "date only is rejected",
			value:   "2024-03-01",
			wantErr: true,
		},
		{
			name:    "empty is rejected",
			value:   "",
			wantErr: true,
		},
		{
			name:    "garbage is rejected",
			value:   "next tuesday",
			wantErr: true,
		},
		{
			name:    "bogus offset is rejected",
			value:   "2024-03-01T10:00:00+99:99",
			wantErr: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			normalized, err := NormalizeDateTime(testCase.value)

			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrUnparsableDateTime)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, normalized)
		})
	}
}
