package helpers_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFile creates a temporary file in the test's temporary directory,
// and automatically removes it when the test is done.
func CreateTempFile(t *testing.T, fileName string) *os.File {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), fileName)
	require.NoError(t, err)

	t.Cleanup(func() {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
	})

	return tmpFile
}

// CreateTempFileWithContents creates a temporary file in the test's temporary
// directory, writes the given content to it, and returns its path.
func CreateTempFileWithContents(t *testing.T, content string) string {
	t.Helper()

	tmpFile := CreateTempFile(t, "booleval-test-*")

	_, err := tmpFile.WriteString(content)
	require.NoError(t, err)

	err = tmpFile.Close()
	require.NoError(t, err)

	return tmpFile.Name()
}

// CreateTempInput creates a file holding the given lines, opened for reading
// from the start. Use it to feed answers to prompts.
func CreateTempInput(t *testing.T, lines ...string) *os.File {
	t.Helper()

	tmpFile := CreateTempFile(t, "booleval-input-*")
	for _, line := range lines {
		_, err := tmpFile.WriteString(line + "\n")
		require.NoError(t, err)
	}

	_, err := tmpFile.Seek(0, 0)
	require.NoError(t, err)

	return tmpFile
}
