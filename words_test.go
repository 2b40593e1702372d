package exactle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		in      string
		want    Word
		wantErr bool
	}{
		{in: "angle", want: "angle"},
		{in: "zesty", want: "zesty"},
		{in: "angl", wantErr: true},
		{in: "angles", wantErr: true},
		{in: "", wantErr: true},
		{in: "angl3", wantErr: true},
		{in: "Angle", wantErr: true},
		{in: "ang e", wantErr: true},
	}

	for _, tt := range tests {
		w, err := ParseWord(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrMalformedWord, "ParseWord(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseWord(%q)", tt.in)
		assert.Equal(t, tt.want, w)
	}
}

func TestReadWords(t *testing.T) {
	in := "apple\nangle\n\nadobe\n"
	words, err := ReadWords(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Word{"apple", "angle", "adobe"}, words)
}

func TestReadWordsMalformedLine(t *testing.T) {
	in := "apple\nplum\nangle\n"
	_, err := ReadWords(strings.NewReader(in))
	require.ErrorIs(t, err, ErrMalformedWord)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadWordsFile(t *testing.T) {
	words, err := ReadWordsFile("data/words.txt")
	require.NoError(t, err)
	assert.NotEmpty(t, words)
}

func TestReadWordsFileMissing(t *testing.T) {
	_, err := ReadWordsFile("data/no-such-file.txt")
	require.Error(t, err)
}
