package document

import "strings"

// SourceType is the declared media type of an uploaded file.
type SourceType string

const (
	SourceTypePlain SourceType = "text/plain"
	SourceTypeCSV   SourceType = "text/csv"
	SourceTypePDF   SourceType = "application/pdf"
)

// Segment is one extracted piece of text with its provenance: a PDF page,
// a CSV row, or the whole body of a plain text file.
type Segment struct {
	Text string `json:"text"`
	Page int    `json:"page,omitempty"`
	Row  int    `json:"row,omitempty"`
}

// Document is the parsed form of one uploaded file. It is immutable once
// loaded and lives only for the duration of the session that produced it.
type Document struct {
	SourceName string     `json:"source_name"`
	SourceType SourceType `json:"source_type"`
	Segments   []Segment  `json:"segments"`
}

// Text concatenates all segment text with blank lines between segments, so
// segment boundaries survive as soft break points in the combined text.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.Segments))
	for _, seg := range d.Segments {
		if seg.Text == "" {
			continue
		}
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, "\n\n")
}
