package tagchunk

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, in string) []string {
	t.Helper()
	s := NewScanner(strings.NewReader(in))
	var got []string
	for s.Next() {
		got = append(got, s.Chunk())
	}
	require.NoError(t, s.Err())
	return got
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "no delimiter yields nothing",
			in:   "<place lat=\"1\"",
			want: nil,
		},
		{
			name: "drops the unterminated tail",
			in:   "<a><b>tail",
			want: []string{"<a", "<b"},
		},
		{
			name: "chunk spans lines",
			in:   "<place\n lat=\"1\"\n/>\n",
			want: []string{"<place\n lat=\"1\"\n/"},
		},
		{
			name: "adjacent delimiters give empty chunks",
			in:   "<a>>",
			want: []string{"<a", ""},
		},
		{
			name: "text between tags is a chunk prefix",
			in:   "<x>hello</x>",
			want: []string{"<x", "hello</x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(t, tt.in))
		})
	}
}

func TestScannerLongChunk(t *testing.T) {
	long := strings.Repeat("x", 3*1024*1024)
	got := collect(t, "<place display_name=\""+long+"\"/><b>")
	require.Len(t, got, 2)
	assert.Len(t, got[0], len(long)+len(`<place display_name=""/`))
	assert.True(t, strings.HasSuffix(got[0], "\"/"))
	assert.Equal(t, "<b", got[1])
}

func TestScannerLongUnterminatedTail(t *testing.T) {
	got := collect(t, "<a>"+strings.Repeat(" ", 2*1024*1024))
	assert.Equal(t, []string{"<a"}, got)
}

type failReader struct{ sent bool }

func (f *failReader) Read(p []byte) (int, error) {
	if !f.sent {
		f.sent = true
		return copy(p, "<a><b"), nil
	}
	return 0, errors.New("device gone")
}

func TestScannerReadError(t *testing.T) {
	s := NewScanner(&failReader{})
	require.True(t, s.Next())
	assert.Equal(t, "<a", s.Chunk())
	assert.False(t, s.Next())
	assert.EqualError(t, s.Err(), "device gone")
	assert.False(t, s.Next())
}

func TestChunkAfterEnd(t *testing.T) {
	s := NewScanner(strings.NewReader("<a>"))
	require.True(t, s.Next())
	assert.Equal(t, "<a", s.Chunk())
	assert.False(t, s.Next())
	assert.Equal(t, "", s.Chunk())
}
