package service

import (
	"context"
	"encoding/json"

	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/specification"
	"fit-buddy-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultPageSize = 50

type IDictionaryService interface {
	ListMachines(ctx context.Context) ([]*dto.MachineResponse, error)
	ListExercises(ctx context.Context, req *dto.ListExercisesRequest) ([]*dto.ExerciseResponse, error)
	CreateExercise(ctx context.Context, req *dto.CreateExerciseRequest) (*dto.CreateExerciseResponse, error)
}

type dictionaryService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewDictionaryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IDictionaryService {
	return &dictionaryService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *dictionaryService) ListMachines(ctx context.Context) ([]*dto.MachineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	machines, err := uow.DictionaryRepository().GetMachines(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MachineResponse, 0, len(machines))
	for _, m := range machines {
		res = append(res, &dto.MachineResponse{
			Id:            m.Id,
			Name:          m.Name,
			MachineTypeId: m.MachineTypeId,
			SensorId:      m.SensorId,
			IsActive:      m.IsActive,
			Zone:          m.Zone,
		})
	}

	return res, nil
}

func (s *dictionaryService) ListExercises(ctx context.Context, req *dto.ListExercisesRequest) ([]*dto.ExerciseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "name"},
	}
	if req.MuscleGroup != "" {
		specs = append(specs, specification.ByMuscleGroup{MuscleGroup: req.MuscleGroup})
	}
	if req.MachineType != "" {
		specs = append(specs, specification.ByMachineType{MachineTypeId: req.MachineType})
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}
	specs = append(specs, specification.Pagination{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})

	exercises, err := uow.DictionaryRepository().GetExercises(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		res = append(res, toExerciseResponse(e))
	}

	return res, nil
}

func (s *dictionaryService) CreateExercise(ctx context.Context, req *dto.CreateExerciseRequest) (*dto.CreateExerciseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.DictionaryRepository().GetExerciseByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "exercise with this name already exists")
	}

	exercise := entity.Exercise{
		Id:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		MuscleGroup:   req.MuscleGroup,
		MachineTypeId: req.MachineTypeId,
		Alternatives:  req.Alternatives,
	}

	if err := uow.DictionaryRepository().CreateExercise(ctx, &exercise); err != nil {
		return nil, err
	}

	// hand off to the async embedding pipeline so the new exercise becomes
	// searchable by the librarian
	msgPayload := dto.PublishEmbedExerciseMessage{
		ExerciseId: exercise.Id,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.CreateExerciseResponse{
		Id: exercise.Id,
	}, nil
}

func toExerciseResponse(e *entity.Exercise) *dto.ExerciseResponse {
	alternatives := e.Alternatives
	if alternatives == nil {
		alternatives = []uuid.UUID{}
	}
	return &dto.ExerciseResponse{
		Id:            e.Id,
		Name:          e.Name,
		Description:   e.Description,
		MuscleGroup:   e.MuscleGroup,
		MachineTypeId: e.MachineTypeId,
		Alternatives:  alternatives,
	}
}
