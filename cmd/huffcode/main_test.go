package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chronos-tachyon/huffcode"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func TestRun(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	codeBookFile := filepath.Join(t.TempDir(), "codebook.cbor")
	cfg := config{
		inputFile:    writeInput(t, "aaabb\nsecond line is ignored\n"),
		showTree:     true,
		codeBookFile: codeBookFile,
		verify:       true,
	}

	var out strings.Builder
	require.NoError(t, run(cfg, &out))

	assert.Contains(t, out.String(), "a\t3\t    1\n")
	assert.Contains(t, out.String(), "Encoded String: \n11100\n")
	assert.Contains(t, out.String(), "Difference in space required is 80%.\n")
	assert.Contains(t, out.String(), "\t5:\"ba\"\n")
	assert.NotContains(t, out.String(), "second line")

	data, err := os.ReadFile(codeBookFile)
	require.NoError(t, err)
	cb, err := huffcode.UnmarshalCodeBook(data)
	require.NoError(t, err)
	assert.Equal(t, 2, cb.Len())
}

func TestRun_EmptyInput(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	var out strings.Builder
	require.NoError(t, run(config{inputFile: writeInput(t, "")}, &out))
	assert.Equal(t, emptyInputMessage+"\n", out.String())
}

func TestRun_MissingFile(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	var out strings.Builder
	err := run(config{inputFile: filepath.Join(t.TempDir(), "missing.txt")}, &out)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadText(t *testing.T) {
	name := writeInput(t, "first\r\nsecond\n")

	text, err := loadText(name, false)
	require.NoError(t, err)
	assert.Equal(t, "first", text)

	text, err = loadText(name, true)
	require.NoError(t, err)
	assert.Equal(t, "first\r\nsecond", text)
}
