package librarian

import (
	"context"
	"log"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/pkg/rag/architect"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentLookups bounds the catalog lookup fan-out per program.
const maxConcurrentLookups = 8

// Searcher is the slice of the retriever the librarian needs.
type Searcher interface {
	Search(ctx context.Context, query string, limit int, sourceType string) []*entity.KnowledgeItem
}

// RealizedSession is a skeleton session with every slot resolved against the
// exercise catalog.
type RealizedSession struct {
	Title     string
	Exercises []entity.ExercisePlanEntry
}

// Librarian translates the architect's semantic queries into concrete catalog
// exercises via vector search.
type Librarian struct {
	searcher Searcher
	logger   *log.Logger
}

func NewLibrarian(searcher Searcher, logger *log.Logger) *Librarian {
	return &Librarian{
		searcher: searcher,
		logger:   logger,
	}
}

// Realize resolves every slot in the skeleton concurrently. Slot order within
// each session is preserved. A query with no catalog hit degrades to an
// unresolved entry carrying the query text as its name.
func (l *Librarian) Realize(ctx context.Context, skeleton *architect.Skeleton) ([]RealizedSession, error) {
	sessions := make([]RealizedSession, len(skeleton.Sessions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for si, session := range skeleton.Sessions {
		sessions[si] = RealizedSession{
			Title:     session.Title,
			Exercises: make([]entity.ExercisePlanEntry, len(session.Entries)),
		}

		for ei, slot := range session.Entries {
			g.Go(func() error {
				sessions[si].Exercises[ei] = l.resolve(gctx, slot)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (l *Librarian) resolve(ctx context.Context, slot architect.SkeletonEntry) entity.ExercisePlanEntry {
	plan := entity.ExercisePlanEntry{
		ExerciseName: slot.SearchQuery, // fallback when nothing matches
		TargetSets:   slot.TargetSets,
		TargetReps:   slot.TargetReps,
		RestSeconds:  slot.RestSeconds,
		Notes:        slot.Notes,
	}

	items := l.searcher.Search(ctx, slot.SearchQuery, 1, entity.KnowledgeSourceExercise)
	if len(items) == 0 {
		l.logger.Printf("[WARN] no catalog match for query %q", slot.SearchQuery)
		return plan
	}

	best := items[0]
	if best.SourceId != nil {
		plan.ExerciseId = best.SourceId
	}
	if name := best.Name(); name != "" {
		plan.ExerciseName = name
	}

	return plan
}
