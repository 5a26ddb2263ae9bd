package minioctrl

import (
	"context"
	"path"
)

// ScratchBucket binds the object service to one bucket and satisfies the
// document loader's scratch store: raw uploaded bytes are kept under the
// original file name, so a repeated name overwrites the earlier object.
type ScratchBucket struct {
	svc    *MinioService
	bucket string
}

func NewScratchBucket(ctx context.Context, svc *MinioService, bucket string) (*ScratchBucket, error) {
	if err := svc.EnsureBucketExists(ctx, bucket); err != nil {
		return nil, err
	}
	return &ScratchBucket{svc: svc, bucket: bucket}, nil
}

func (b *ScratchBucket) Save(ctx context.Context, name string, data []byte) error {
	return b.svc.PutObject(ctx, b.bucket, path.Base(name), "application/octet-stream", data)
}
