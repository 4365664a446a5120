package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/contract"
	"fit-buddy-be/internal/repository/unitofwork"
	"fit-buddy-be/pkg/iot"
	"fit-buddy-be/pkg/llm"
	"fit-buddy-be/pkg/rag/librarian"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	AvailabilityStatusAvailable = "available"
	AvailabilityStatusBusy      = "busy"

	ragCandidateLimit = 5
)

type IAdaptationService interface {
	CheckAvailability(ctx context.Context, userId, exerciseId uuid.UUID) (*dto.AvailabilityResponse, error)
}

// adaptationService runs the availability check for one exercise. When the
// machine is busy it gathers swap candidates from the curated catalog links
// and from semantic search, keeps only the ones whose machines are free, and
// lets the model pick the single best one for this user.
type adaptationService struct {
	uowFactory    unitofwork.RepositoryFactory
	waitEstimator iot.WaitEstimator
	searcher      librarian.Searcher
	llmProvider   llm.LLMProvider
	waitThreshold int // minutes a user is assumed willing to wait
	logger        *log.Logger
}

func NewAdaptationService(
	uowFactory unitofwork.RepositoryFactory,
	waitEstimator iot.WaitEstimator,
	searcher librarian.Searcher,
	llmProvider llm.LLMProvider,
	waitThreshold int,
	logger *log.Logger,
) IAdaptationService {
	return &adaptationService{
		uowFactory:    uowFactory,
		waitEstimator: waitEstimator,
		searcher:      searcher,
		llmProvider:   llmProvider,
		waitThreshold: waitThreshold,
		logger:        logger,
	}
}

// swapCandidate is one potential alternative before wait filtering. Origin is
// either a curated catalog link or a semantic-search hit.
type swapCandidate struct {
	exercise *entity.Exercise
	origin   string // dto.AlternativeTypeDBLink or dto.AlternativeTypeRagSuggestion
	wait     int
}

func (s *adaptationService) CheckAvailability(ctx context.Context, userId, exerciseId uuid.UUID) (*dto.AvailabilityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	exercise, err := uow.DictionaryRepository().GetExerciseById(ctx, exerciseId)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "exercise not found")
	}

	wait, source := s.waitForExercise(ctx, uow, exercise)

	if wait <= s.waitThreshold {
		return &dto.AvailabilityResponse{
			Status:         AvailabilityStatusAvailable,
			WaitTime:       wait,
			Recommendation: "Machine is free, go for it!",
			Alternatives:   []dto.AlternativeSuggestion{},
			DatasetSource:  source,
		}, nil
	}

	candidates, bestSet := s.discoverCandidates(ctx, uow, userId, exercise)
	survivors := s.filterByWait(ctx, uow, candidates)

	if len(survivors) == 0 {
		return &dto.AvailabilityResponse{
			Status:         AvailabilityStatusBusy,
			WaitTime:       wait,
			Recommendation: fmt.Sprintf("Machine busy (~%d min wait) and all alternatives are busy too. Rest and wait it out.", wait),
			Alternatives:   []dto.AlternativeSuggestion{},
			DatasetSource:  source,
		}, nil
	}

	picked := s.selectAlternative(ctx, uow, userId, exercise, survivors, bestSet)

	return &dto.AvailabilityResponse{
		Status:         AvailabilityStatusBusy,
		WaitTime:       wait,
		Recommendation: fmt.Sprintf("Machine busy (~%d min wait). Try %s instead.", wait, picked.Exercise),
		Alternatives:   []dto.AlternativeSuggestion{picked},
		DatasetSource:  source,
	}, nil
}

// waitForExercise resolves the exercise's machine type to concrete floor
// machines and asks the wait estimator for the best one. Exercises without a
// machine are always available.
func (s *adaptationService) waitForExercise(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	exercise *entity.Exercise,
) (int, string) {
	if exercise.MachineTypeId == nil || *exercise.MachineTypeId == "" {
		return 0, iot.DatasetSourceFallback
	}

	machines, err := uow.DictionaryRepository().GetMachines(ctx)
	if err != nil {
		s.logger.Printf("[WARN] machine lookup failed: %v", err)
		return 0, iot.DatasetSourceFallback
	}

	var machineIds []string
	for _, m := range machines {
		if m.IsActive && m.MachineTypeId == *exercise.MachineTypeId {
			machineIds = append(machineIds, m.Id.String())
		}
	}

	return s.waitEstimator.EstimateWait(ctx, machineIds)
}

// discoverCandidates gathers curated catalog links and semantic-search hits
// concurrently, along with the user's best historical set for the exercise.
// Duplicates are resolved by id with catalog links taking precedence. The
// original exercise is always excluded.
func (s *adaptationService) discoverCandidates(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	userId uuid.UUID,
	exercise *entity.Exercise,
) ([]*swapCandidate, *contract.BestSet) {

	var catalog []*entity.Exercise
	var ragHits []*entity.Exercise
	var bestSet *contract.BestSet

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for _, altId := range exercise.Alternatives {
			alt, err := uow.DictionaryRepository().GetExerciseById(gctx, altId)
			if err != nil {
				s.logger.Printf("[WARN] alternative lookup failed for %s: %v", altId, err)
				continue
			}
			if alt != nil {
				catalog = append(catalog, alt)
			}
		}
		return nil
	})

	g.Go(func() error {
		query := fmt.Sprintf("exercise similar to %s targeting %s", exercise.Name, exercise.MuscleGroup)
		for _, item := range s.searcher.Search(gctx, query, ragCandidateLimit, entity.KnowledgeSourceExercise) {
			name := item.Name()
			if name == "" {
				continue
			}
			resolved, err := uow.DictionaryRepository().GetExerciseByName(gctx, name)
			if err != nil || resolved == nil {
				continue
			}
			ragHits = append(ragHits, resolved)
		}
		return nil
	})

	g.Go(func() error {
		best, err := uow.SessionRepository().GetRecentBestSet(gctx, userId, exercise.Id)
		if err != nil {
			s.logger.Printf("[WARN] best-set lookup failed: %v", err)
			return nil
		}
		bestSet = best
		return nil
	})

	// goroutines only log failures, the group never errors
	_ = g.Wait()

	seen := map[uuid.UUID]bool{exercise.Id: true}
	var candidates []*swapCandidate
	for _, alt := range catalog {
		if seen[alt.Id] {
			continue
		}
		seen[alt.Id] = true
		candidates = append(candidates, &swapCandidate{exercise: alt, origin: dto.AlternativeTypeDBLink})
	}
	for _, alt := range ragHits {
		if seen[alt.Id] {
			continue
		}
		seen[alt.Id] = true
		candidates = append(candidates, &swapCandidate{exercise: alt, origin: dto.AlternativeTypeRagSuggestion})
	}

	return candidates, bestSet
}

// filterByWait checks every candidate's machine concurrently and keeps only
// the ones a user would not have to queue for.
func (s *adaptationService) filterByWait(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	candidates []*swapCandidate,
) []*swapCandidate {
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range candidates {
		g.Go(func() error {
			c.wait, _ = s.waitForExercise(gctx, uow, c.exercise)
			return nil
		})
	}
	_ = g.Wait()

	var survivors []*swapCandidate
	for _, c := range candidates {
		if c.wait <= s.waitThreshold {
			survivors = append(survivors, c)
		}
	}
	return survivors
}

type swapPick struct {
	Exercise string `json:"exercise"`
	Reason   string `json:"reason"`
}

// selectAlternative asks the model to choose one survivor by name. An
// unrecognized or failed pick deterministically falls back to the first
// survivor with a generic reason.
func (s *adaptationService) selectAlternative(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	userId uuid.UUID,
	exercise *entity.Exercise,
	survivors []*swapCandidate,
	bestSet *contract.BestSet,
) dto.AlternativeSuggestion {

	chosen := survivors[0]
	reason := "Closest match by movement pattern"

	var names []string
	for _, c := range survivors {
		names = append(names, c.exercise.Name)
	}

	history := "no previous history"
	if bestSet != nil {
		history = fmt.Sprintf("best set %.1fkg x %d reps", bestSet.WeightKg, bestSet.Reps)
	}

	goal, level := s.profileContext(ctx, uow, userId)

	prompt := fmt.Sprintf(`The machine for "%s" (%s) is busy. The user's goal is %s, experience level %s, %s on this exercise.

Pick the single best substitute from this list:
- %s

Respond with ONLY this JSON structure:
{"exercise": "<exact name from the list>", "reason": "<one short sentence>"}`,
		exercise.Name, exercise.MuscleGroup, goal, level, history, strings.Join(names, "\n- "))

	var pick swapPick
	if err := llm.GenerateJSON(ctx, s.llmProvider, prompt, &pick); err != nil {
		s.logger.Printf("[WARN] AI swap pick failed, using first candidate: %v", err)
	} else {
		matched := false
		for _, c := range survivors {
			if c.exercise.Name == pick.Exercise {
				chosen = c
				matched = true
				break
			}
		}
		if matched && pick.Reason != "" {
			reason = pick.Reason
		} else if !matched {
			s.logger.Printf("[WARN] AI picked unknown exercise %q, using first candidate", pick.Exercise)
		}
	}

	id := chosen.exercise.Id
	return dto.AlternativeSuggestion{
		Type:     dto.AlternativeTypeAIRecommendation,
		Exercise: chosen.exercise.Name,
		Id:       &id,
		WaitTime: chosen.wait,
		Reason:   reason,
	}
}

// profileContext loads goal and level for the selection prompt, best effort.
func (s *adaptationService) profileContext(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (string, string) {
	profile, err := uow.ProfileRepository().GetByUserId(ctx, userId)
	if err != nil || profile == nil {
		return "general_fitness", "beginner"
	}
	return profile.Goal(), profile.ExperienceLevel()
}
