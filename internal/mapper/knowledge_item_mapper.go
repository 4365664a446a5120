package mapper

import (
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type KnowledgeItemMapper struct{}

func NewKnowledgeItemMapper() *KnowledgeItemMapper {
	return &KnowledgeItemMapper{}
}

func (m *KnowledgeItemMapper) ToEntity(e *model.KnowledgeItem) *entity.KnowledgeItem {
	if e == nil {
		return nil
	}
	return &entity.KnowledgeItem{
		Id:          e.Id,
		SourceType:  e.SourceType,
		SourceId:    e.SourceId,
		ContentText: e.ContentText,
		Embedding:   e.Embedding.Slice(),
		Metadata:    map[string]interface{}(e.MetadataInfo),
		CreatedAt:   e.CreatedAt,
	}
}

func (m *KnowledgeItemMapper) ToModel(e *entity.KnowledgeItem) *model.KnowledgeItem {
	if e == nil {
		return nil
	}
	return &model.KnowledgeItem{
		Id:           e.Id,
		SourceType:   e.SourceType,
		SourceId:     e.SourceId,
		ContentText:  e.ContentText,
		Embedding:    pgvector.NewVector(e.Embedding),
		MetadataInfo: datatypes.JSONMap(e.Metadata),
		CreatedAt:    e.CreatedAt,
	}
}

func (m *KnowledgeItemMapper) ToEntities(items []*model.KnowledgeItem) []*entity.KnowledgeItem {
	entities := make([]*entity.KnowledgeItem, len(items))
	for i, item := range items {
		entities[i] = m.ToEntity(item)
	}
	return entities
}

func (m *KnowledgeItemMapper) ToModels(items []*entity.KnowledgeItem) []*model.KnowledgeItem {
	models := make([]*model.KnowledgeItem, len(items))
	for i, item := range items {
		models[i] = m.ToModel(item)
	}
	return models
}
