package retriever

import (
	"context"
	"log"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/contract"
	"fit-buddy-be/pkg/embedding"
)

// Retriever runs semantic search over the knowledge base. Search is
// fail-soft: embedding or database failures degrade to an empty result so
// callers can fall back instead of aborting a whole generation run.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	knowledgeItems    contract.KnowledgeItemRepository
	logger            *log.Logger
}

func NewRetriever(
	embeddingProvider embedding.EmbeddingProvider,
	knowledgeItems contract.KnowledgeItemRepository,
	logger *log.Logger,
) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		knowledgeItems:    knowledgeItems,
		logger:            logger,
	}
}

// Search embeds the query and returns the nearest items of the given source
// type, ordered by cosine distance. sourceType may be empty to search all.
func (r *Retriever) Search(ctx context.Context, query string, limit int, sourceType string) []*entity.KnowledgeItem {
	embeddingRes, err := r.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		r.logger.Printf("[WARN] embedding failed for query %q: %v", query, err)
		return []*entity.KnowledgeItem{}
	}

	items, err := r.knowledgeItems.SearchSimilar(ctx, embeddingRes.Embedding.Values, limit, sourceType)
	if err != nil {
		r.logger.Printf("[WARN] vector search failed for query %q: %v", query, err)
		return []*entity.KnowledgeItem{}
	}

	return items
}
