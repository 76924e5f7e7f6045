package controller

import (
	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/pkg/serverutils"
	"startup-compliance-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChecklistController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Items(ctx *fiber.Ctx) error
	UpdateProgress(ctx *fiber.Ctx) error
	UpdateItem(ctx *fiber.Ctx) error
}

type checklistController struct {
	checklistService service.IChecklistService
}

func NewChecklistController(checklistService service.IChecklistService) IChecklistController {
	return &checklistController{
		checklistService: checklistService,
	}
}

func (c *checklistController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/checklist/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get(":id/items", c.Items)
	h.Put(":id/progress", c.UpdateProgress)
	h.Put("item/:id/complete", c.UpdateItem)
}

func (c *checklistController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.checklistService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list checklists", res))
}

func (c *checklistController) Items(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.checklistService.Items(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse("Checklist not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list checklist items", res))
}

func (c *checklistController) UpdateProgress(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdateChecklistProgressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.checklistService.UpdateProgress(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse("Checklist not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update checklist progress", res))
}

func (c *checklistController) UpdateItem(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdateChecklistItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.checklistService.UpdateItem(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse("Checklist item not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update checklist item", res))
}
