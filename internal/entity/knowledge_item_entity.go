package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	KnowledgeSourceExercise = "exercise"
	KnowledgeSourceDocChunk = "doc_chunk"
)

// KnowledgeItem is one indexed unit of the vector knowledge base: either an
// embedded catalog exercise or a chunk of expert documentation. Items are
// written once by the ingestion pipeline and read-only afterwards.
type KnowledgeItem struct {
	Id          uuid.UUID
	SourceType  string // "exercise" or "doc_chunk"
	SourceId    *uuid.UUID
	ContentText string
	Embedding   []float32
	Metadata    map[string]interface{} // carries at least "name" for exercises
	CreatedAt   time.Time
}

// Name returns the human-readable name from metadata, empty when absent.
func (k *KnowledgeItem) Name() string {
	if n, ok := k.Metadata["name"].(string); ok {
		return n
	}
	return ""
}
