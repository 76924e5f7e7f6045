package controller

import (
	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/pkg/serverutils"
	"startup-compliance-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAlertController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type alertController struct {
	alertService service.IAlertService
}

func NewAlertController(alertService service.IAlertService) IAlertController {
	return &alertController{
		alertService: alertService,
	}
}

func (c *alertController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/alert/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Put(":id/status", c.UpdateStatus)
}

func (c *alertController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.alertService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list compliance alerts", res))
}

func (c *alertController) UpdateStatus(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdateAlertStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.alertService.UpdateStatus(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse("Alert not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update alert status", res))
}
