package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPage(t *testing.T) {
	page, err := buildPage(config{title: "Demo"})
	require.NoError(t, err)
	doc, err := page.Document()
	require.NoError(t, err)
	assert.Equal(t, "Demo", strings.TrimSpace(doc.Find("title").Text()))
	assert.Equal(t, 6, doc.Find("tr").Length())
	assert.Equal(t, 5, doc.Find("tr.red td").Length())
	assert.Equal(t, 1, doc.Find("td.special").Length())
	assert.Equal(t, 1, doc.Find("td.awesome").Length())
	assert.Equal(t, 6, doc.Find("td.border").Length())
	assert.Contains(t, doc.Find("style").Text(), "background-image: -webkit-linear-gradient")
}

func TestRunWithStyles(t *testing.T) {
	dir := t.TempDir()
	styles := filepath.Join(dir, "styles.yaml")
	require.NoError(t, os.WriteFile(styles, []byte("h1:\n  color: navy\n"), 0o644))
	out := filepath.Join(dir, "out.html")

	require.NoError(t, run(config{title: "T", styles: styles, output: out, lint: true, defaults: true}))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>\n<html>"))
	assert.Contains(t, string(data), "h1 { color: navy; }")

	require.NoError(t, run(config{title: "T", output: out, minify: true}))
	data, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\n    ")
}

func TestRunBadStyles(t *testing.T) {
	dir := t.TempDir()
	styles := filepath.Join(dir, "styles.yaml")
	require.NoError(t, os.WriteFile(styles, []byte("- nope\n"), 0o644))
	assert.Error(t, run(config{styles: styles, output: filepath.Join(dir, "out.html")}))
}
