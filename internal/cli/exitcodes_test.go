package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCodeFromError(nil))
	assert.Equal(t, ExitFailure, ExitCodeFromError(errors.New("plain failure")))

	coded := withExitCode(ExitIOError, errors.New("read failed"))
	assert.Equal(t, ExitIOError, ExitCodeFromError(coded))
	assert.EqualError(t, coded, "read failed")
}

func TestExitCodeFromError_CommandErrors(t *testing.T) {
	dir := t.TempDir()
	source := writeFixture(t, dir, "doc.adoc", "text")
	elements := writeFixture(t, dir, "elements.json", elementsJSON)

	_, err := executeCommand(t, "parse", filepath.Join(dir, "absent.adoc"), elements)
	assert.Equal(t, ExitIOError, ExitCodeFromError(err))

	badElements := writeFixture(t, dir, "bad.json", "{not json")
	_, err = executeCommand(t, "parse", source, badElements)
	assert.Equal(t, ExitDataError, ExitCodeFromError(err))

	_, err = executeCommand(t, "parse", source, elements, "--format", "xml")
	assert.Equal(t, ExitInvalidUsage, ExitCodeFromError(err))

	badConfig := writeFixture(t, dir, "config.yaml", "log_level: loud\n")
	_, err = executeCommand(t, "--config", badConfig, "extensions")
	assert.Equal(t, ExitDataError, ExitCodeFromError(err))
}
