// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"uniconnect_backend/internal/alumni"
	"uniconnect_backend/internal/app"
	"uniconnect_backend/internal/auth"
	"uniconnect_backend/internal/chat"
	"uniconnect_backend/internal/club"
	"uniconnect_backend/internal/config"
	"uniconnect_backend/internal/event"
	"uniconnect_backend/internal/filestorage"
	"uniconnect_backend/internal/foodcourt"
	"uniconnect_backend/internal/housing"
	"uniconnect_backend/internal/jobs"
	"uniconnect_backend/internal/marketplace"
	"uniconnect_backend/internal/platform/database"
	"uniconnect_backend/internal/platform/elasticsearch"
	"uniconnect_backend/internal/platform/logger"
	"uniconnect_backend/internal/post"
	"uniconnect_backend/internal/pyq"
	"uniconnect_backend/internal/search"
	"uniconnect_backend/internal/university"
	"uniconnect_backend/internal/user"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,
		elasticsearch.NewClient,
		filestorage.NewLocalService,
		provideCleanup,

		// Identity core
		university.NewGORMRepository,
		university.NewHandler,
		user.NewGORMRepository,
		user.NewService,
		user.NewHandler,
		auth.NewJWTService,
		auth.NewSessionIssuer,
		auth.NewOAuthService,
		auth.NewHandler,

		// Resource modules
		post.NewGORMRepository,
		post.NewService,
		post.NewHandler,
		marketplace.NewGORMRepository,
		marketplace.NewService,
		marketplace.NewHandler,
		chat.NewGORMRepository,
		chat.NewService,
		chat.NewHandler,
		event.NewGORMRepository,
		event.NewHandler,
		foodcourt.NewGORMRepository,
		foodcourt.NewHandler,
		housing.NewGORMRepository,
		housing.NewHandler,
		club.NewGORMRepository,
		club.NewHandler,
		alumni.NewGORMRepository,
		alumni.NewService,
		alumni.NewHandler,
		pyq.NewGORMRepository,
		pyq.NewService,
		pyq.NewHandler,
		search.NewHandler,
		jobs.NewMarketplaceExpiryJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
