package resources

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	lib, err := Load()
	require.NoError(t, err)

	require.Len(t, lib.Concepts, 3)
	assert.Equal(t, "Embrace Challenges", lib.Concepts[0].Title)
	assert.Len(t, lib.Concepts[0].Points, 2)

	require.Len(t, lib.Reading, 3)
	assert.Equal(t, Book{Title: "Mindset: The New Psychology of Success", Author: "Carol Dweck"}, lib.Reading[0])

	require.Len(t, lib.Tips, 5)
	assert.Equal(t, "Replace 'I can't' with 'I can't yet'", lib.Tips[0])
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "minimal",
			input: "tips:\n  - Keep going\n",
		},
		{
			name:    "concept without title",
			input:   "concepts:\n  - points: [a]\n",
			wantErr: ErrInvalidLibrary,
		},
		{
			name:    "book without title",
			input:   "reading:\n  - author: Someone\n",
			wantErr: ErrInvalidLibrary,
		},
		{
			name:    "blank tip",
			input:   "tips:\n  - \"  \"\n",
			wantErr: ErrInvalidLibrary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lib, err := Parse([]byte(tt.input))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, lib)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, lib)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]byte("tips: [unterminated"))
		assert.Error(t, err)
	})
}
