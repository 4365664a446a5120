package implementation

import (
	"context"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/mapper"
	"fit-buddy-be/internal/model"
	"fit-buddy-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeItemMapper
}

func NewKnowledgeItemRepository(db *gorm.DB) contract.KnowledgeItemRepository {
	return &KnowledgeItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeItemMapper(),
	}
}

func (r *KnowledgeItemRepositoryImpl) Create(ctx context.Context, item *entity.KnowledgeItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeItemRepositoryImpl) CreateBulk(ctx context.Context, items []*entity.KnowledgeItem) error {
	if len(items) == 0 {
		return nil
	}
	models := r.mapper.ToModels(items)
	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return err
	}
	for i, m := range models {
		*items[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *KnowledgeItemRepositoryImpl) DeleteBySourceType(ctx context.Context, sourceType string) error {
	return r.db.WithContext(ctx).
		Where("source_type = ?", sourceType).
		Delete(&model.KnowledgeItem{}).Error
}

func (r *KnowledgeItemRepositoryImpl) Count(ctx context.Context, sourceType string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.KnowledgeItem{})
	if sourceType != "" {
		query = query.Where("source_type = ?", sourceType)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *KnowledgeItemRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, sourceType string) ([]*entity.KnowledgeItem, error) {
	if limit <= 0 {
		limit = 5
	}
	var models []*model.KnowledgeItem

	// pgvector cosine distance: embedding <=> query vector, ascending
	query := r.db.WithContext(ctx)
	if sourceType != "" {
		query = query.Where("source_type = ?", sourceType)
	}
	err := query.
		Order(gorm.Expr("embedding <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
