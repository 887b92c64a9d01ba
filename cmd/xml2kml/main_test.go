package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	saved := os.Args
	t.Cleanup(func() { os.Args = saved })
	os.Args = append([]string{"xml2kml"}, args...)
	t.Setenv("XML2KML_OPTS", "")
	t.Setenv("XML2KML_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.xml")
	require.NoError(t, os.WriteFile(in, []byte(`<place place_id="55" lat="50.1" lon="6.9" display_name="Park"/>`), 0o644))
	out := filepath.Join(dir, "out.kml")

	withArgs(t, "-h")
	assert.Equal(t, 0, run())

	withArgs(t, "-version")
	assert.Equal(t, 0, run())

	var logbuf bytes.Buffer
	logger.SetOutput(&logbuf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	withArgs(t, filepath.Join(dir, "missing.xml"), out)
	assert.Equal(t, 1, run())
	assert.Contains(t, logbuf.String(), "xml2kml: Error opening files: open input ")

	withArgs(t, in, filepath.Join(dir, "no", "such", "dir.kml"))
	assert.Equal(t, 1, run())

	withArgs(t, "-n", "Spot", in, out)
	assert.Equal(t, 0, run())
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<Placemark><name>Spot</name><description>Park</description><Point><coordinates>6.9,50.1,0</coordinates></Point></Placemark>")
}
