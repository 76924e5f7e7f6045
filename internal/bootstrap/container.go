package bootstrap

import (
	"log"
	"time"

	"startup-compliance-be/internal/config"
	"startup-compliance-be/internal/controller"
	"startup-compliance-be/internal/pkg/logger"
	"startup-compliance-be/internal/repository/memory"
	"startup-compliance-be/internal/repository/unitofwork"
	"startup-compliance-be/internal/service"
	"startup-compliance-be/pkg/lock"

	pktNats "startup-compliance-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	GuidanceController  controller.IGuidanceController
	ChecklistController controller.IChecklistController
	DocumentController  controller.IDocumentController
	ActivityController  controller.IActivityController
	AlertController     controller.IAlertController
	DashboardController controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	AlertConsumerService service.IAlertConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis lock serializing absorption per owner. The service degrades to
	// unserialized absorption when the lock backend is down, so a failure
	// here is a warning, not fatal.
	ownerLock, err := lock.NewOwnerLock(cfg.App.RedisURL, 30*time.Second)
	if err != nil {
		log.Printf("[WARN] Failed to initialize Redis owner lock: %v", err)
		ownerLock = nil
	}

	// In-memory dashboard summary cache
	summaryCache := memory.NewSummaryRepository()

	// 3. Services
	guidanceService := service.NewGuidanceService(
		uowFactory,
		cfg.Guidance,
		sysLogger,
		pubSub,
		natsPub,
		ownerLock,
		summaryCache,
	)
	checklistService := service.NewChecklistService(uowFactory)
	documentService := service.NewDocumentService(uowFactory)
	activityService := service.NewActivityService(uowFactory)
	alertService := service.NewAlertService(uowFactory)
	dashboardService := service.NewDashboardService(uowFactory, summaryCache)

	alertConsumerService := service.NewAlertConsumerService(uowFactory, pubSub, sysLogger)

	// 4. Controllers
	return &Container{
		GuidanceController:  controller.NewGuidanceController(guidanceService),
		ChecklistController: controller.NewChecklistController(checklistService),
		DocumentController:  controller.NewDocumentController(documentService),
		ActivityController:  controller.NewActivityController(activityService),
		AlertController:     controller.NewAlertController(alertService),
		DashboardController: controller.NewDashboardController(dashboardService),

		AlertConsumerService: alertConsumerService,
	}
}
