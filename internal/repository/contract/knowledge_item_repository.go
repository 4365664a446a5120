package contract

import (
	"context"

	"fit-buddy-be/internal/entity"
)

type KnowledgeItemRepository interface {
	Create(ctx context.Context, item *entity.KnowledgeItem) error
	CreateBulk(ctx context.Context, items []*entity.KnowledgeItem) error
	// DeleteBySourceType removes all items of one kind (used by re-ingestion)
	DeleteBySourceType(ctx context.Context, sourceType string) error
	Count(ctx context.Context, sourceType string) (int64, error)
	// SearchSimilar runs a cosine-distance nearest-neighbor query, best match
	// first. sourceType restricts the item kind when non-empty.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, sourceType string) ([]*entity.KnowledgeItem, error)
}
