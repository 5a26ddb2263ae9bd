package document

import (
	"context"
	"os"
	"path/filepath"
)

// LocalScratchStore keeps uploaded bytes in a directory on the local
// filesystem. Used by the CLI; the server uses object storage instead.
type LocalScratchStore struct {
	root string
}

func NewLocalScratchStore(root string) *LocalScratchStore {
	return &LocalScratchStore{root: root}
}

func (s *LocalScratchStore) Save(ctx context.Context, name string, data []byte) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return err
	}
	// filepath.Base strips any path components from the uploaded name.
	return os.WriteFile(filepath.Join(s.root, filepath.Base(name)), data, 0644)
}
