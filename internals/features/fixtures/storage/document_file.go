// file: internals/features/fixtures/storage/document_file.go
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bytedance/sonic"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/constants"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
)

// HTML characters and non-ASCII text are written as-is; map keys are sorted
// so a fixed seed and clock give byte-identical files.
var codec = sonic.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// Encode renders doc as 2-space indented JSON.
func Encode(doc *model.Document) ([]byte, error) {
	b, err := codec.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return b, nil
}

// WriteDocument replaces the file at path with the encoded document.
func WriteDocument(path string, doc *model.Document) error {
	b, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadDocument loads a document written by WriteDocument.
func ReadDocument(path string) (*model.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, constants.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc := model.NewDocument(nil)
	if err := codec.Unmarshal(b, doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}
