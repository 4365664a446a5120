package service

import (
	"context"
	"log"
	"time"

	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/unitofwork"
	"fit-buddy-be/pkg/rag/architect"
	"fit-buddy-be/pkg/rag/librarian"
	"fit-buddy-be/pkg/rag/narrative"
	"fit-buddy-be/pkg/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	ProgramSourceAI       = "ai"
	ProgramSourceTemplate = "template"
)

// ProgramDesigner produces a program skeleton from a profile.
type ProgramDesigner interface {
	Design(ctx context.Context, profile *entity.UserProfile, guidelines string) (*architect.Skeleton, error)
}

// ProgramRealizer resolves a skeleton against the exercise catalog.
type ProgramRealizer interface {
	Realize(ctx context.Context, skeleton *architect.Skeleton) ([]librarian.RealizedSession, error)
}

// ProgramPersonalizer rewrites program framing for the user. Never fails.
type ProgramPersonalizer interface {
	Personalize(ctx context.Context, profile *entity.UserProfile, baseName, baseDescription string) narrative.Narrative
}

// GuidelineSource serves expert coaching documents by goal.
type GuidelineSource interface {
	GuidelinesFor(goal string) string
}

type IProgramService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateProgramRequest) (*dto.ProgramResponse, error)
	GetCurrent(ctx context.Context, userId uuid.UUID) (*dto.ProgramResponse, error)
}

type programService struct {
	uowFactory   unitofwork.RepositoryFactory
	designer     ProgramDesigner
	realizer     ProgramRealizer
	personalizer ProgramPersonalizer
	guidelines   GuidelineSource
	logger       *log.Logger
}

func NewProgramService(
	uowFactory unitofwork.RepositoryFactory,
	designer ProgramDesigner,
	realizer ProgramRealizer,
	personalizer ProgramPersonalizer,
	guidelines GuidelineSource,
	logger *log.Logger,
) IProgramService {
	return &programService{
		uowFactory:   uowFactory,
		designer:     designer,
		realizer:     realizer,
		personalizer: personalizer,
		guidelines:   guidelines,
		logger:       logger,
	}
}

func (s *programService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateProgramRequest) (*dto.ProgramResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "profile not found, complete onboarding first")
	}

	active, err := uow.ProgramRepository().GetActiveProgram(ctx, userId)
	if err != nil {
		return nil, err
	}
	if active != nil && !req.Regenerate {
		return nil, fiber.NewError(fiber.StatusConflict, "an active program already exists, set regenerate to replace it")
	}

	baseName, baseDescription, sessions, source := s.buildPlan(ctx, uow, profile, req.Method)

	story := s.personalizer.Personalize(ctx, profile, baseName, baseDescription)

	program := &entity.Program{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      story.ProgramName,
		Goal:      profile.Goal(),
		Status:    entity.ProgramStatusActive,
		StartDate: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ProgramRepository().ArchiveCurrentPrograms(ctx, userId); err != nil {
		return nil, err
	}

	stored, err := uow.ProgramRepository().CreateProgram(ctx, program, sessions)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := toProgramResponse(stored)
	res.CoachNotes = story.CoachNotes
	res.Source = source
	return res, nil
}

// buildPlan runs the two-stage AI pipeline for smart generation and degrades
// to the curated template catalog when either stage fails. method=template
// skips the pipeline entirely.
func (s *programService) buildPlan(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	profile *entity.UserProfile,
	method string,
) (baseName, baseDescription string, sessions []*entity.Session, source string) {

	if method != dto.GenerationMethodTemplate {
		guidelines := s.guidelines.GuidelinesFor(profile.Goal())

		skeleton, err := s.designer.Design(ctx, profile, guidelines)
		if err == nil {
			realized, rerr := s.realizer.Realize(ctx, skeleton)
			if rerr == nil && len(realized) > 0 {
				sessions = make([]*entity.Session, 0, len(realized))
				for i, rs := range realized {
					sessions = append(sessions, &entity.Session{
						Id:            uuid.New(),
						Name:          rs.Title,
						OrderIndex:    i + 1,
						ExercisesPlan: rs.Exercises,
					})
				}
				return skeleton.ProgramName, skeleton.Description, sessions, ProgramSourceAI
			}
			err = rerr
		}

		s.logger.Printf("[WARN] smart generation failed, using template fallback: %v", err)
	}

	template := templates.ForProfile(profile.Goal(), profile.ExperienceLevel())
	sessions = make([]*entity.Session, 0, len(template.Sessions))
	for i, ts := range template.Sessions {
		exercises := make([]entity.ExercisePlanEntry, len(ts.Exercises))
		copy(exercises, ts.Exercises)
		// best effort: bind template names to catalog ids
		for j := range exercises {
			if exercises[j].ExerciseId != nil {
				continue
			}
			catalogEntry, lookupErr := uow.DictionaryRepository().GetExerciseByName(ctx, exercises[j].ExerciseName)
			if lookupErr == nil && catalogEntry != nil {
				id := catalogEntry.Id
				exercises[j].ExerciseId = &id
			}
		}
		sessions = append(sessions, &entity.Session{
			Id:            uuid.New(),
			Name:          ts.Title,
			OrderIndex:    i + 1,
			ExercisesPlan: exercises,
		})
	}

	return template.Name, template.Description, sessions, ProgramSourceTemplate
}

func (s *programService) GetCurrent(ctx context.Context, userId uuid.UUID) (*dto.ProgramResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	program, err := uow.ProgramRepository().GetActiveProgram(ctx, userId)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "no active program, generate one first")
	}

	return toProgramResponse(program), nil
}

func toProgramResponse(program *entity.Program) *dto.ProgramResponse {
	sessions := make([]dto.SessionResponse, 0, len(program.Sessions))
	for _, s := range program.Sessions {
		plan := s.ExercisesPlan
		if plan == nil {
			plan = []entity.ExercisePlanEntry{}
		}
		sessions = append(sessions, dto.SessionResponse{
			Id:            s.Id,
			Name:          s.Name,
			OrderIndex:    s.OrderIndex,
			ExercisesPlan: plan,
		})
	}

	return &dto.ProgramResponse{
		Id:        program.Id,
		Name:      program.Name,
		Goal:      program.Goal,
		Status:    program.Status,
		StartDate: program.StartDate,
		EndDate:   program.EndDate,
		Sessions:  sessions,
	}
}
