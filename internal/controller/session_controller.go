package controller

import (
	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/pkg/serverutils"
	"fit-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	CheckAvailability(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	LogSet(ctx *fiber.Ctx) error
	Stop(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService    service.ISessionService
	adaptationService service.IAdaptationService
}

func NewSessionController(
	sessionService service.ISessionService,
	adaptationService service.IAdaptationService,
) ISessionController {
	return &sessionController{
		sessionService:    sessionService,
		adaptationService: adaptationService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("check-availability/:exercise_id", c.CheckAvailability)
	h.Post("start", c.Start)
	h.Post("set", c.LogSet)
	h.Post("stop", c.Stop)
	h.Get("history/:id", c.History)
	h.Get("stats/:exercise_id", c.Stats)
}

func (c *sessionController) CheckAvailability(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	exerciseId, err := uuid.Parse(ctx.Params("exercise_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid exercise id")
	}

	res, err := c.adaptationService.CheckAvailability(ctx.Context(), userId, exerciseId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check availability", res))
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.StartSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	res, err := c.sessionService.Start(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start session", res))
}

func (c *sessionController) LogSet(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.LogSetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.sessionService.LogSet(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success log set", res))
}

func (c *sessionController) Stop(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.StopSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.sessionService.Stop(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success stop session", res))
}

func (c *sessionController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	historyId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid history id")
	}

	res, err := c.sessionService.History(ctx.Context(), userId, historyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session history", res))
}

func (c *sessionController) Stats(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	exerciseId, err := uuid.Parse(ctx.Params("exercise_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid exercise id")
	}

	res, err := c.sessionService.Stats(ctx.Context(), userId, exerciseId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show exercise stats", res))
}
