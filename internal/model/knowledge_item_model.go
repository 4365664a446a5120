package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type KnowledgeItem struct {
	Id           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SourceType   string          `gorm:"not null;index"` // "exercise" or "doc_chunk"
	SourceId     *uuid.UUID      `gorm:"type:uuid;index"`
	ContentText  string          `gorm:"type:text;not null"`
	Embedding    pgvector.Vector `gorm:"type:vector(768)"` // Gemini text-embedding-004 uses 768 dimensions
	MetadataInfo datatypes.JSONMap
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (KnowledgeItem) TableName() string {
	return "knowledge_items"
}
