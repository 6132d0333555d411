package bootstrap

import (
	"log"
	"math/rand"

	"healthsphere-ml-be/internal/config"
	"healthsphere-ml-be/internal/constant"
	"healthsphere-ml-be/internal/controller"
	"healthsphere-ml-be/internal/mapper"
	"healthsphere-ml-be/internal/pkg/logger"
	"healthsphere-ml-be/internal/repository/memory"
	"healthsphere-ml-be/internal/service"
	"healthsphere-ml-be/pkg/mlmodel"
	"healthsphere-ml-be/pkg/sensor"
)

type Container struct {
	// Controllers
	ActivityController controller.IActivityController
	FoodController     controller.IFoodController
	RiskController     controller.IRiskController
	ChatController     controller.IChatController
	MetaController     controller.IMetaController

	// Exposed for graceful shutdown
	SysLogger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Models
	// In synthetic mode the stand-in models are fitted once at startup on
	// seeded random data, so restarts with the same seed behave identically.
	// In rules mode services fall back to their deterministic tables.
	var activityClassifier mlmodel.Classifier
	riskRegressors := make(map[string]mlmodel.Regressor, len(constant.RiskCategories))

	if cfg.Model.Mode == config.ModelModeSynthetic {
		rng := rand.New(rand.NewSource(cfg.Model.Seed))
		activityClassifier = mlmodel.NewSyntheticClassifier(constant.Activities, sensor.VectorSize, rng)
		for _, category := range constant.RiskCategories {
			bounds := constant.RiskTargetRanges[category]
			riskRegressors[category] = mlmodel.NewSyntheticRegressor(constant.RiskFeatureCount, bounds[0], bounds[1], rng)
		}
		log.Printf("[INFO] Model mode: synthetic (seed %d)", cfg.Model.Seed)
	} else {
		riskRegressors = nil
		log.Printf("[INFO] Model mode: rules")
	}

	// 3. Repositories
	conversationRepo := memory.NewConversationRepository()

	// 4. Services
	activityService := service.NewActivityService(activityClassifier, sysLogger)
	foodService := service.NewFoodService(cfg.Model.Seed, sysLogger)
	riskService := service.NewRiskService(riskRegressors, sysLogger)
	chatService := service.NewChatService(conversationRepo, mapper.NewChatMapper(), cfg.Model.Seed, sysLogger)

	// 5. Controllers
	return &Container{
		ActivityController: controller.NewActivityController(activityService),
		FoodController:     controller.NewFoodController(foodService),
		RiskController:     controller.NewRiskController(riskService),
		ChatController:     controller.NewChatController(chatService),
		MetaController:     controller.NewMetaController(),

		SysLogger: sysLogger,
	}
}
