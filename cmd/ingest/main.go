package main

import (
	"context"
	"log"
	"time"

	"fit-buddy-be/internal/config"
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/unitofwork"
	"fit-buddy-be/internal/service"
	"fit-buddy-be/pkg/database"
	"fit-buddy-be/pkg/embedding"
	"fit-buddy-be/pkg/rag/knowledge"
	"fit-buddy-be/pkg/utils"

	"github.com/google/uuid"
)

// Re-ingests the whole vector knowledge base: every catalog exercise plus
// the expert guideline documents, chunked. Safe to run repeatedly; each
// source type is wiped before being rebuilt.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	uow := uowFactory.NewUnitOfWork(ctx)

	if err := ingestExercises(ctx, uow, embeddingProvider); err != nil {
		log.Fatalf("Error: Exercise ingestion failed: %v", err)
	}

	library := knowledge.NewLibrary(cfg.App.AssetsDir)
	if err := ingestGuidelines(ctx, uow, embeddingProvider, library); err != nil {
		log.Fatalf("Error: Guideline ingestion failed: %v", err)
	}

	total, err := uow.KnowledgeItemRepository().Count(ctx, "")
	if err == nil {
		log.Printf("Ingestion complete, knowledge base holds %d items", total)
	}
}

func ingestExercises(ctx context.Context, uow unitofwork.UnitOfWork, provider embedding.EmbeddingProvider) error {
	exercises, err := uow.DictionaryRepository().GetExercises(ctx)
	if err != nil {
		return err
	}
	log.Printf("Embedding %d catalog exercises...", len(exercises))

	var items []*entity.KnowledgeItem
	for _, exercise := range exercises {
		content := service.BuildExerciseDocument(exercise)
		res, err := provider.Generate(content, "RETRIEVAL_DOCUMENT")
		if err != nil {
			return err
		}

		exerciseId := exercise.Id
		items = append(items, &entity.KnowledgeItem{
			Id:          uuid.New(),
			SourceType:  entity.KnowledgeSourceExercise,
			SourceId:    &exerciseId,
			ContentText: content,
			Embedding:   res.Embedding.Values,
			Metadata: map[string]interface{}{
				"name":         exercise.Name,
				"muscle_group": exercise.MuscleGroup,
			},
			CreatedAt: time.Now(),
		})
	}

	if err := uow.KnowledgeItemRepository().DeleteBySourceType(ctx, entity.KnowledgeSourceExercise); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return uow.KnowledgeItemRepository().CreateBulk(ctx, items)
}

func ingestGuidelines(ctx context.Context, uow unitofwork.UnitOfWork, provider embedding.EmbeddingProvider, library *knowledge.Library) error {
	docs, err := library.Documents()
	if err != nil {
		log.Printf("Warn: no guideline documents found: %v", err)
		return nil
	}
	log.Printf("Embedding %d guideline documents...", len(docs))

	var items []*entity.KnowledgeItem
	for name, doc := range docs {
		chunks := utils.SplitText(doc, 1500, 200)
		for i, chunk := range chunks {
			res, err := provider.Generate(chunk, "RETRIEVAL_DOCUMENT")
			if err != nil {
				return err
			}
			items = append(items, &entity.KnowledgeItem{
				Id:          uuid.New(),
				SourceType:  entity.KnowledgeSourceDocChunk,
				ContentText: chunk,
				Embedding:   res.Embedding.Values,
				Metadata: map[string]interface{}{
					"document":    name,
					"chunk_index": i,
				},
				CreatedAt: time.Now(),
			})
		}
	}

	if err := uow.KnowledgeItemRepository().DeleteBySourceType(ctx, entity.KnowledgeSourceDocChunk); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return uow.KnowledgeItemRepository().CreateBulk(ctx, items)
}
