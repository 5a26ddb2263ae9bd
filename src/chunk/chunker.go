package chunk

import (
	"fmt"

	"docsum/src/document"
)

const (
	DefaultMaxSize = 1000
	DefaultOverlap = 100
)

// Chunk is a bounded slice of document text sized for model input limits.
// Adjacent chunks share exactly the splitter's overlap length, except that
// the final chunk may be shorter than the maximum.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Splitter produces chunks with a sliding window. Parameters are validated
// once at construction; Split itself cannot fail.
type Splitter struct {
	maxSize int
	overlap int
}

func NewSplitter(maxSize, overlap int) (*Splitter, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("chunk max size must be positive, got %d", maxSize)
	}
	if overlap < 0 || overlap >= maxSize {
		return nil, fmt.Errorf("chunk overlap must be in [0, %d), got %d", maxSize, overlap)
	}
	return &Splitter{maxSize: maxSize, overlap: overlap}, nil
}

// Split concatenates the document's segments and slides a window of maxSize
// characters forward by maxSize-overlap each step. It is a pure function:
// the same document and parameters always yield the same chunk sequence.
func (s *Splitter) Split(doc *document.Document) []Chunk {
	return s.SplitText(doc.Text())
}

// SplitText chunks raw text directly. Sizes are measured in runes so that
// multi-byte text never gets cut mid-character.
func (s *Splitter) SplitText(text string) []Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	step := s.maxSize - s.overlap
	var chunks []Chunk
	for start := 0; start < len(runes); start += step {
		end := start + s.maxSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Text:  string(runes[start:end]),
		})
		if end == len(runes) {
			break
		}
	}
	return chunks
}
