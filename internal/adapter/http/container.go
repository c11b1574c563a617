package http

import (
	"flashcardapp/internal/adapter/database"
	"flashcardapp/internal/adapter/database/repository"
	"flashcardapp/internal/adapter/http/handler"
	"flashcardapp/internal/core/port"
	"flashcardapp/internal/core/service"
	"flashcardapp/internal/core/telemetry"
	"flashcardapp/internal/core/util"
	"flashcardapp/pkg/logger"
)

type Container struct {
	UserRepo       port.UserRepository
	CollectionRepo port.CollectionRepository
	FlashcardRepo  port.FlashcardRepository

	AuthService       port.AuthService
	CollectionService port.CollectionService
	FlashcardService  port.FlashcardService

	AuthHandler       *handler.AuthHandler
	CollectionHandler *handler.CollectionHandler
}

func NewContainer(db *database.DB, logger *logger.Logger, metrics *telemetry.AppMetrics) *Container {
	userRepo := repository.NewUserRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	flashcardRepo := repository.NewFlashcardRepository(db)

	authSvc := service.NewAuthService(userRepo, util.NewPasswordHasher(), metrics)
	collectionSvc := service.NewCollectionService(collectionRepo, metrics)
	flashcardSvc := service.NewFlashcardService(flashcardRepo, metrics)

	return &Container{
		UserRepo:       userRepo,
		CollectionRepo: collectionRepo,
		FlashcardRepo:  flashcardRepo,

		AuthService:       authSvc,
		CollectionService: collectionSvc,
		FlashcardService:  flashcardSvc,

		AuthHandler:       handler.NewAuthHandler(authSvc, logger),
		CollectionHandler: handler.NewCollectionHandler(collectionSvc, flashcardSvc, logger),
	}
}
