package controller

import (
	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/pkg/serverutils"
	"fit-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDictionaryController interface {
	RegisterRoutes(r fiber.Router)
	ListMachines(ctx *fiber.Ctx) error
	ListExercises(ctx *fiber.Ctx) error
	CreateExercise(ctx *fiber.Ctx) error
}

type dictionaryController struct {
	dictionaryService service.IDictionaryService
}

func NewDictionaryController(dictionaryService service.IDictionaryService) IDictionaryController {
	return &dictionaryController{
		dictionaryService: dictionaryService,
	}
}

func (c *dictionaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dictionary/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("machines", c.ListMachines)
	h.Get("exercises", c.ListExercises)
	h.Post("exercises", c.CreateExercise)
}

func (c *dictionaryController) ListMachines(ctx *fiber.Ctx) error {
	res, err := c.dictionaryService.ListMachines(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list machines", res))
}

func (c *dictionaryController) ListExercises(ctx *fiber.Ctx) error {
	var req dto.ListExercisesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.dictionaryService.ListExercises(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list exercises", res))
}

func (c *dictionaryController) CreateExercise(ctx *fiber.Ctx) error {
	var req dto.CreateExerciseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.dictionaryService.CreateExercise(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create exercise", res))
}
