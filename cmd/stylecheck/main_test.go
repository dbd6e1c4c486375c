package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `<!DOCTYPE html>
<html><head><style>p { color: red; }</style></head>
<body><p id="a" class="note">Hello</p><div>World</div></body></html>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{}, args...)) // nil would fall back to os.Args
	err := cmd.Execute()
	return out.String(), err
}

func TestStyleTreeOutput(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.html", testDocument)
	out, err := execute(t, doc)
	require.NoError(t, err)
	assert.Contains(t, out, "<p#a.note>")
	assert.Contains(t, out, "display=")
}

func TestSelectWithAuthorSheet(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.html", testDocument)
	sheet := writeFile(t, dir, "author.css", "#a { margin-top: 20px; }")
	out, err := execute(t, "--css", sheet, "--select", "p.note", "--groups", "Margins", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "<p#a.note>")
	assert.Contains(t, out, "margin-top:")
	assert.Contains(t, out, "20px")
}

func TestSelectNoMatch(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.html", testDocument)
	out, err := execute(t, "-s", "table", doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "no element matches"))
}

func TestDotOutput(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.html", testDocument)
	out, err := execute(t, "--dot", "--rules", doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, "matched rules")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.html", testDocument)
	cfg := writeFile(t, dir, "styling.yaml", "quirks_mode: bogus\n")
	_, err := execute(t, "--config", cfg, doc)
	assert.Error(t, err)
}

func TestMissingDocument(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "none.html"))
	assert.Error(t, err)
	_, err = execute(t)
	assert.Error(t, err)
}
