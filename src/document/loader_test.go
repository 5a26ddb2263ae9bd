package document_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"docsum/src/document"
)

// fakeScratchStore records what the loader asks it to persist.
type fakeScratchStore struct {
	saved map[string][]byte
	err   error
}

func newFakeScratchStore() *fakeScratchStore {
	return &fakeScratchStore{saved: make(map[string][]byte)}
}

func (f *fakeScratchStore) Save(ctx context.Context, name string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.saved[name] = append([]byte(nil), data...)
	return nil
}

func TestLoadRejectsUnsupportedTypes(t *testing.T) {
	loader := document.NewLoader(newFakeScratchStore())

	for _, mediaType := range []string{"application/json", "image/png", "text/html", ""} {
		_, err := loader.Load(context.Background(), "f", mediaType, []byte("data"))
		if !errors.Is(err, document.ErrUnsupportedFileType) {
			t.Errorf("Load(%q) error = %v, want ErrUnsupportedFileType", mediaType, err)
		}
	}
}

func TestLoadPlainText(t *testing.T) {
	scratch := newFakeScratchStore()
	loader := document.NewLoader(scratch)

	doc, err := loader.Load(context.Background(), "notes.txt", "text/plain", []byte("hello world"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if doc.SourceName != "notes.txt" || doc.SourceType != document.SourceTypePlain {
		t.Errorf("unexpected document identity: %+v", doc)
	}
	if doc.Text() != "hello world" {
		t.Errorf("Text() = %q", doc.Text())
	}
	if string(scratch.saved["notes.txt"]) != "hello world" {
		t.Errorf("raw bytes were not persisted to the scratch store")
	}
}

func TestLoadCSVRendersRows(t *testing.T) {
	csvData := "name,role\nalice,admin\nbob,viewer\n"
	loader := document.NewLoader(newFakeScratchStore())

	doc, err := loader.Load(context.Background(), "users.csv", "text/csv", []byte(csvData))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(doc.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(doc.Segments))
	}
	if doc.Segments[0].Text != "name: alice\nrole: admin" {
		t.Errorf("row 1 = %q", doc.Segments[0].Text)
	}
	if doc.Segments[1].Text != "name: bob\nrole: viewer" {
		t.Errorf("row 2 = %q", doc.Segments[1].Text)
	}
	// Row provenance is 1-based over data rows, not counting the header.
	if doc.Segments[0].Row != 1 || doc.Segments[1].Row != 2 {
		t.Errorf("row numbers = %d, %d, want 1, 2", doc.Segments[0].Row, doc.Segments[1].Row)
	}
}

func TestLoadCSVFieldCountMismatch(t *testing.T) {
	csvData := "name,role\nalice,admin\nbob\n"
	loader := document.NewLoader(newFakeScratchStore())

	_, err := loader.Load(context.Background(), "bad.csv", "text/csv", []byte(csvData))
	if !errors.Is(err, document.ErrDocumentLoad) {
		t.Errorf("Load error = %v, want ErrDocumentLoad", err)
	}
}

func TestLoadEmptyCSV(t *testing.T) {
	loader := document.NewLoader(newFakeScratchStore())

	_, err := loader.Load(context.Background(), "empty.csv", "text/csv", nil)
	if !errors.Is(err, document.ErrDocumentLoad) {
		t.Errorf("Load error = %v, want ErrDocumentLoad", err)
	}
}

func TestLoadCorruptPDF(t *testing.T) {
	loader := document.NewLoader(newFakeScratchStore())

	_, err := loader.Load(context.Background(), "broken.pdf", "application/pdf", []byte("not a pdf at all"))
	if !errors.Is(err, document.ErrDocumentLoad) {
		t.Errorf("Load error = %v, want ErrDocumentLoad", err)
	}
}

func TestLoadEmptyPlainText(t *testing.T) {
	loader := document.NewLoader(newFakeScratchStore())

	for _, data := range [][]byte{nil, []byte("")} {
		_, err := loader.Load(context.Background(), "empty.txt", "text/plain", data)
		if !errors.Is(err, document.ErrDocumentLoad) {
			t.Errorf("Load error = %v, want ErrDocumentLoad", err)
		}
	}
}

func TestLoadScratchFailure(t *testing.T) {
	scratch := newFakeScratchStore()
	scratch.err = errors.New("bucket unavailable")
	loader := document.NewLoader(scratch)

	_, err := loader.Load(context.Background(), "notes.txt", "text/plain", []byte("hello"))
	if !errors.Is(err, document.ErrDocumentLoad) {
		t.Errorf("Load error = %v, want ErrDocumentLoad", err)
	}
	if !strings.Contains(err.Error(), "bucket unavailable") {
		t.Errorf("scratch cause lost: %v", err)
	}
}

func TestLoadDuplicateNameOverwritesScratch(t *testing.T) {
	scratch := newFakeScratchStore()
	loader := document.NewLoader(scratch)

	if _, err := loader.Load(context.Background(), "notes.txt", "text/plain", []byte("first")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := loader.Load(context.Background(), "notes.txt", "text/plain", []byte("second")); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if string(scratch.saved["notes.txt"]) != "second" {
		t.Errorf("scratch store holds %q, want the later upload", scratch.saved["notes.txt"])
	}
}
