package notes_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/redhat-cne/version-table/internal/notes"
)

const (
	notesFileNameConstant    = "version-notes.txt"
	notesFileContentConstant = "v1.0.0 first supported release\nrelease-4.18 OpenShift 4.18 payload\nmalformed-line\nmain   tracks development\n"
)

func TestLoadParsesAnnotations(testInstance *testing.T) {
	notesFilePath := filepath.Join(testInstance.TempDir(), notesFileNameConstant)
	require.NoError(testInstance, os.WriteFile(notesFilePath, []byte(notesFileContentConstant), 0o644))

	loader := notes.NewLoader(zap.NewNop(), nil)
	annotations := loader.Load(notesFilePath)

	require.Equal(testInstance, map[string]string{
		"v1.0.0":       "first supported release",
		"release-4.18": "OpenShift 4.18 payload",
		"main":         "tracks development",
	}, annotations)
}

func TestLoadMissingFileYieldsEmptyMap(testInstance *testing.T) {
	loader := notes.NewLoader(zap.NewNop(), nil)
	annotations := loader.Load(filepath.Join(testInstance.TempDir(), notesFileNameConstant))
	require.Empty(testInstance, annotations)
}

func TestLoadReadErrorYieldsEmptyMap(testInstance *testing.T) {
	failingReader := func(string) ([]byte, error) {
		return nil, errors.New("disk unavailable")
	}

	loader := notes.NewLoader(zap.NewNop(), failingReader)
	require.Empty(testInstance, loader.Load(notesFileNameConstant))
}

func TestLoadNotExistErrorTreatedAsMissing(testInstance *testing.T) {
	missingReader := func(string) ([]byte, error) {
		return nil, fs.ErrNotExist
	}

	loader := notes.NewLoader(zap.NewNop(), missingReader)
	require.Empty(testInstance, loader.Load(notesFileNameConstant))
}
