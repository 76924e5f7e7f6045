package controller

import (
	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/pkg/serverutils"
	"startup-compliance-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type activityController struct {
	activityService service.IActivityService
}

func NewActivityController(activityService service.IActivityService) IActivityController {
	return &activityController{
		activityService: activityService,
	}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activity/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
}

func (c *activityController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ListActivityRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.activityService.List(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list recent activity", res))
}
