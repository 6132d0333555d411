package controller

import (
	"time"

	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

const (
	serviceName    = "healthsphere-ml-api"
	serviceVersion = "1.0.0"
)

type IMetaController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type metaController struct{}

func NewMetaController() IMetaController {
	return &metaController{}
}

func (c *metaController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/health", c.Health)
}

func (c *metaController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse(&dto.ServiceInfoResponse{
		Message: "HealthSphere ML API",
		Version: serviceVersion,
		Status:  "running",
		Endpoints: map[string]string{
			"activity_detection": "/activity-detect",
			"food_recognition":   "/food-recognition",
			"risk_forecasting":   "/risk-forecast",
			"chat":               "/chat",
			"health":             "/health",
		},
	}))
}

func (c *metaController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse(&dto.HealthCheckResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().UTC(),
	}))
}
