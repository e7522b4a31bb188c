package fileContents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "b")
	writeFile(t, dir, "a.txt", "a")
	writeFile(t, dir, "upper.TXT", "wrong case")
	writeFile(t, dir, "notes.md", "wrong suffix")

	filePaths, err := List(dir, ".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, filePaths)
}

func TestListMissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), ".txt")
	require.Error(t, err)
	var dirErr *DirectoryError
	assert.ErrorAs(t, err, &dirErr)
	assert.Contains(t, err.Error(), "nope")
}

func TestListOnFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "file.txt", "not a directory")
	_, err := List(path, ".txt")
	require.Error(t, err)
	var dirErr *DirectoryError
	assert.ErrorAs(t, err, &dirErr)
}

func TestListKeepsMatchingDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "trap.txt"), 0755))

	filePaths, err := List(dir, ".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "trap.txt")}, filePaths, "entries are not stat'ed, reading decides later")
}

func TestListEmptyDirectory(t *testing.T) {
	filePaths, err := List(t.TempDir(), ".txt")
	require.NoError(t, err)
	assert.NotNil(t, filePaths)
	assert.Empty(t, filePaths)
}

func TestReadText(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plain.txt", "dogs are the greatest pets\n")
	content, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "dogs are the greatest pets\n", content)
}

func TestReadUnknownExtensionIsRaw(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.md", "# dogs\n")
	content, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "# dogs\n", content)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "trap.txt"), 0755))
	_, err := Read(filepath.Join(dir, "trap.txt"))
	require.Error(t, err)
	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestReadHTML(t *testing.T) {
	page := `<html><head><title>Doggos</title>` +
		`<style>p { color: red; }</style>` +
		`<script>var tracker = 1;</script></head>` +
		`<body><p>dogs are <b>the</b> greatest pets</p>` +
		`<noscript>scripts are off</noscript></body></html>`
	path := writeFile(t, t.TempDir(), "page.html", page)

	content, err := Read(path)
	require.NoError(t, err)
	assert.Contains(t, content, "Doggos")
	assert.Contains(t, content, "dogs are")
	assert.Contains(t, content, "greatest pets")
	assert.NotContains(t, content, "var tracker")
	assert.NotContains(t, content, "color: red")
	assert.NotContains(t, content, "scripts are off")
}

func TestReadXML(t *testing.T) {
	note := `<?xml version="1.0"?><note><to>dogs</to><body>are the greatest pets</body></note>`
	path := writeFile(t, t.TempDir(), "note.xml", note)

	content, err := Read(path)
	require.NoError(t, err)
	assert.Contains(t, content, "dogs")
	assert.Contains(t, content, "are the greatest pets")
}

func TestReadBrokenXML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.xml", "<note><to>dogs</note>")
	_, err := Read(path)
	require.Error(t, err)
	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestReadPDFRejectsGarbage(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fake.pdf", "this is not a pdf")
	_, err := Read(path)
	require.Error(t, err)
	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
}
