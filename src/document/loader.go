package document

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"docsum/src/log"
)

var (
	// ErrUnsupportedFileType is returned when the declared media type is not
	// one of text/plain, text/csv or application/pdf.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrDocumentLoad is returned when a supported file cannot be parsed.
	ErrDocumentLoad = errors.New("failed to load document")
)

// ScratchStore persists raw uploaded bytes keyed by the original file name
// before parsing begins.
type ScratchStore interface {
	Save(ctx context.Context, name string, data []byte) error
}

// Loader turns uploaded bytes plus a declared media type into a Document.
type Loader struct {
	scratch ScratchStore
}

func NewLoader(scratch ScratchStore) *Loader {
	return &Loader{scratch: scratch}
}

// Load parses the uploaded bytes according to the declared media type. The
// raw bytes are written to the scratch store first; a duplicate file name
// within a session overwrites the earlier upload. Parse failures return no
// partial Document.
func (l *Loader) Load(ctx context.Context, name string, mediaType string, data []byte) (*Document, error) {
	sourceType := SourceType(mediaType)
	switch sourceType {
	case SourceTypePlain, SourceTypeCSV, SourceTypePDF:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, mediaType)
	}

	if l.scratch != nil {
		if err := l.scratch.Save(ctx, name, data); err != nil {
			return nil, fmt.Errorf("%w: saving %q: %v", ErrDocumentLoad, name, err)
		}
	}

	var segments []Segment
	var err error
	switch sourceType {
	case SourceTypePlain:
		segments, err = parsePlain(data)
	case SourceTypeCSV:
		segments, err = parseCSV(data)
	case SourceTypePDF:
		segments, err = parsePDF(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDocumentLoad, name, err)
	}

	doc := &Document{
		SourceName: name,
		SourceType: sourceType,
		Segments:   segments,
	}
	if doc.Text() == "" {
		return nil, fmt.Errorf("%w: %q contains no text", ErrDocumentLoad, name)
	}

	log.Debug("document loaded", "name", name, "type", mediaType, "segments", len(segments))
	return doc, nil
}

func parsePlain(data []byte) ([]Segment, error) {
	return []Segment{{Text: string(data)}}, nil
}

// parseCSV renders each data row as "header: value" lines, one segment per
// row, with the 1-based row number as provenance.
func parseCSV(data []byte) ([]Segment, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("empty CSV file")
		}
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var segments []Segment
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", row+1, err)
		}
		row++

		lines := make([]string, len(record))
		for i, field := range record {
			lines[i] = fmt.Sprintf("%s: %s", header[i], field)
		}
		segments = append(segments, Segment{
			Text: strings.Join(lines, "\n"),
			Row:  row,
		})
	}
	return segments, nil
}

// parsePDF extracts plain text page by page, one segment per page.
func parsePDF(data []byte) ([]Segment, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	var segments []Segment
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		segments = append(segments, Segment{
			Text: text,
			Page: i,
		})
	}
	return segments, nil
}
