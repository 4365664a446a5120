package controller

import (
	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/pkg/serverutils"
	"fit-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProgramController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
}

type programController struct {
	programService service.IProgramService
}

func NewProgramController(programService service.IProgramService) IProgramController {
	return &programController{
		programService: programService,
	}
}

func (c *programController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/program/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("generate", c.Generate)
	h.Get("current", c.Current)
}

func (c *programController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateProgramRequest
	// body is optional, an empty POST means a plain first-time smart generate
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}
	}
	if m := ctx.Query("method"); m != "" {
		if m != dto.GenerationMethodSmart && m != dto.GenerationMethodTemplate {
			return fiber.NewError(fiber.StatusBadRequest, "method must be smart or template")
		}
		req.Method = m
	}

	res, err := c.programService.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate program", res))
}

func (c *programController) Current(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.programService.GetCurrent(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show current program", res))
}
