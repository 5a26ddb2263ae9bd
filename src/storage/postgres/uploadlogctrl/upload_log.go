package uploadlogctrl

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// UploadRecord logs which user uploaded which file. The record outlives the
// session; the document content itself does not live here.
type UploadRecord struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Filename  string    `gorm:"not null" json:"filename"`
	MediaType string    `gorm:"not null" json:"media_type"`
	SizeBytes int64     `gorm:"not null" json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

type UploadLogService struct {
	db        *gorm.DB
	snowflake *snowflake.Node
}

func NewUploadLogService(db *gorm.DB) (*UploadLogService, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %v", err)
	}

	if err := db.AutoMigrate(&UploadRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate upload records: %v", err)
	}

	return &UploadLogService{
		db:        db,
		snowflake: node,
	}, nil
}

func (s *UploadLogService) Record(ctx context.Context, userID, filename, mediaType string, sizeBytes int64) (*UploadRecord, error) {
	record := &UploadRecord{
		ID:        s.snowflake.Generate().Int64(),
		UserID:    userID,
		Filename:  filename,
		MediaType: mediaType,
		SizeBytes: sizeBytes,
	}

	result := s.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create upload record: %v", result.Error)
	}

	return record, nil
}

func (s *UploadLogService) ListByUser(ctx context.Context, userID string, limit, offset int) ([]UploadRecord, error) {
	var records []UploadRecord
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list upload records: %v", result.Error)
	}
	return records, nil
}
