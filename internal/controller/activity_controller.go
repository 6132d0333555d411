package controller

import (
	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/pkg/serverutils"
	"healthsphere-ml-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	Detect(ctx *fiber.Ctx) error
	DetectBatch(ctx *fiber.Ctx) error
	Activities(ctx *fiber.Ctx) error
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
	h := r.Group("/activity-detect")
	h.Post("", c.Detect)
	h.Post("/batch", c.DetectBatch)
	h.Get("/activities", c.Activities)
}

func (c *activityController) Detect(ctx *fiber.Ctx) error {
	var req dto.ActivityDetectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.activityService.DetectActivity(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

// DetectBatch accepts a JSON array of detection requests. Per-item validation
// happens in the service so one malformed sample never fails the batch.
func (c *activityController) DetectBatch(ctx *fiber.Ctx) error {
	var reqs []dto.ActivityDetectRequest
	if err := ctx.BodyParser(&reqs); err != nil {
		return serverutils.NewValidationError("invalid request body: %v", err)
	}

	res, err := c.activityService.DetectActivityBatch(ctx.Context(), reqs)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *activityController) Activities(ctx *fiber.Ctx) error {
	res, err := c.activityService.GetSupportedActivities(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}
