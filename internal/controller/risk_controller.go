package controller

import (
	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/pkg/serverutils"
	"healthsphere-ml-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRiskController interface {
	RegisterRoutes(r fiber.Router)
	Forecast(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
	RiskFactors(ctx *fiber.Ctx) error
	Interventions(ctx *fiber.Ctx) error
}

type riskController struct {
	riskService service.IRiskService
}

func NewRiskController(riskService service.IRiskService) IRiskController {
	return &riskController{
		riskService: riskService,
	}
}

func (c *riskController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/risk-forecast")
	h.Post("", c.Forecast)
	h.Post("/comparison", c.Compare)
	h.Get("/risk-factors", c.RiskFactors)
	h.Post("/interventions", c.Interventions)
}

func (c *riskController) Forecast(ctx *fiber.Ctx) error {
	var req dto.RiskForecastRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.riskService.ForecastRisk(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

// Compare accepts a JSON array of scenarios. Per-scenario failures are
// embedded in the result so one bad scenario never fails the comparison.
func (c *riskController) Compare(ctx *fiber.Ctx) error {
	var reqs []dto.RiskForecastRequest
	if err := ctx.BodyParser(&reqs); err != nil {
		return serverutils.NewValidationError("invalid request body: %v", err)
	}

	res, err := c.riskService.CompareScenarios(ctx.Context(), reqs)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *riskController) RiskFactors(ctx *fiber.Ctx) error {
	res, err := c.riskService.GetRiskFactors(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *riskController) Interventions(ctx *fiber.Ctx) error {
	var req dto.RiskForecastRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.riskService.SuggestInterventions(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}
