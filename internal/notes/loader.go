package notes

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

const (
	notesFileMissingMessageConstant = "version notes file not found"
	notesFileReadErrorMessage       = "unable to read version notes file"
	notesFileFieldNameConstant      = "notes_file"
	lineSeparatorConstant           = "\n"
)

// FileReader reads the contents of a file path.
type FileReader func(path string) ([]byte, error)

// Loader reads ref annotation files into lookup maps.
type Loader struct {
	logger     *zap.Logger
	fileReader FileReader
}

// NewLoader constructs a Loader with optional collaborator overrides.
func NewLoader(logger *zap.Logger, fileReader FileReader) *Loader {
	resolvedLogger := logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}

	resolvedFileReader := fileReader
	if resolvedFileReader == nil {
		resolvedFileReader = os.ReadFile
	}

	return &Loader{logger: resolvedLogger, fileReader: resolvedFileReader}
}

// Load parses the annotation file at notesFilePath. Each line is split on the
// first whitespace run into a ref name and its annotation; malformed lines are
// skipped. A missing or unreadable file degrades to an empty map.
func (loader *Loader) Load(notesFilePath string) map[string]string {
	annotations := map[string]string{}

	contentBytes, readError := loader.fileReader(notesFilePath)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) {
			loader.logger.Warn(notesFileMissingMessageConstant, zap.String(notesFileFieldNameConstant, notesFilePath))
			return annotations
		}
		loader.logger.Error(notesFileReadErrorMessage, zap.String(notesFileFieldNameConstant, notesFilePath), zap.Error(readError))
		return annotations
	}

	for _, rawLine := range strings.Split(string(contentBytes), lineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(rawLine)
		separatorIndex := strings.IndexFunc(trimmedLine, unicode.IsSpace)
		if separatorIndex < 0 {
			continue
		}

		refName := trimmedLine[:separatorIndex]
		annotation := strings.TrimSpace(trimmedLine[separatorIndex:])
		if len(annotation) == 0 {
			continue
		}

		annotations[refName] = annotation
	}

	return annotations
}
