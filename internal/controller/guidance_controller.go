package controller

import (
	"errors"

	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/pkg/serverutils"
	"startup-compliance-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGuidanceController interface {
	RegisterRoutes(r fiber.Router)
	Absorb(ctx *fiber.Ctx) error
}

type guidanceController struct {
	guidanceService service.IGuidanceService
}

func NewGuidanceController(guidanceService service.IGuidanceService) IGuidanceController {
	return &guidanceController{
		guidanceService: guidanceService,
	}
}

func (c *guidanceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/guidance/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("absorb", c.Absorb)
}

func (c *guidanceController) Absorb(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AbsorbGuidanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.guidanceService.Absorb(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrAbsorptionInProgress) {
			return ctx.Status(fiber.StatusConflict).
				JSON(serverutils.ErrorResponse("Another absorption is already running for this account"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success absorb guidance", res))
}
