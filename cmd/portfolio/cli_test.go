package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command. Flags live on package-level commands, so
// every call spells out the flags it depends on.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio dev\n", out)
}

func TestNewThenList(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "new", "--content", dir, "--slug", "", "Observação", "em", "Produção")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "observacao-em-producao.md"))

	_, err = run(t, "new", "--content", dir, "--slug", "", "Observação em Produção")
	assert.Error(t, err, "existing post must not be overwritten")

	out, err = run(t, "posts", "--content", dir, "--all=false", "--tag", "")
	require.NoError(t, err)
	assert.Contains(t, out, "No posts found.")

	out, err = run(t, "posts", "--content", dir, "--all", "--tag", "")
	require.NoError(t, err)
	assert.Contains(t, out, "observacao-em-producao")
	assert.Contains(t, out, "(rascunho)")
}

func TestShow(t *testing.T) {
	dir := t.TempDir()
	post := "---\ntitle: Hello\ndate: 2024-03-15\ntags: [go]\n---\nTexto do post.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.md"), []byte(post), 0o644))

	out, err := run(t, "show", "--content", dir, "--width", "80", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "15/03/2024")
	assert.Contains(t, out, "Tags: go")
	assert.Contains(t, out, "Texto")

	_, err = run(t, "show", "--content", dir, "--width", "80", "missing")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.md"), []byte("---\ntitle: OK\n---\n"), 0o644))

	out, err := run(t, "check", "--content", dir, "--watch=false")
	require.NoError(t, err)
	assert.Contains(t, out, "1 post files OK")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.md"), []byte("---\ntitle: [oops\n---\n"), 0o644))
	out, err = run(t, "check", "--content", dir, "--watch=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 post files failed")
	assert.Contains(t, out, "broken.md")
}
