package main

import (
	"context"
	"log/slog"
	"os"

	"hifybe/config"
	"hifybe/internal/delivery"
	"hifybe/internal/delivery/http"
	"hifybe/internal/delivery/http/middleware"
	"hifybe/internal/delivery/http/router/handler"
	"hifybe/internal/infra/auth"
	"hifybe/internal/infra/auth/google"
	"hifybe/internal/infra/auth/spotify"
	logs "hifybe/internal/infra/log"
	"hifybe/internal/infra/persistence/postgres"
	"hifybe/internal/infra/qrcode"
	"hifybe/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSongRepository,
			postgres.NewPlaylistRepository,
			postgres.NewPlayRepository,
			postgres.NewFriendshipRepository,
			postgres.NewConversationRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			fx.Annotate(
				google.NewOAuthService,
				fx.ResultTags(`name:"googleOAuth"`),
			),
			fx.Annotate(
				spotify.NewOAuthService,
				fx.ResultTags(`name:"spotifyOAuth"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewSongService,
			impl.NewPlaylistService,
			impl.NewPlayService,
			impl.NewFriendshipService,
			impl.NewConversationService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestContextMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewSongHandler,
			handler.NewPlaylistHandler,
			handler.NewPlayHandler,
			handler.NewFriendshipHandler,
			handler.NewConversationHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
