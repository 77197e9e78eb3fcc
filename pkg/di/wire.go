//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/FraserParlane/road-names/pkg/di/config"
	shortcontext "github.com/FraserParlane/road-names/pkg/di/context"
	fetcher_di "github.com/FraserParlane/road-names/pkg/di/fetcher"
	kv_di "github.com/FraserParlane/road-names/pkg/di/kv"
	logger_di "github.com/FraserParlane/road-names/pkg/di/logger"
	"github.com/FraserParlane/road-names/pkg/fetcher"
	roadHttp "github.com/FraserParlane/road-names/pkg/http"
	"github.com/FraserParlane/road-names/pkg/http/http-router/controllers"
	"github.com/FraserParlane/road-names/pkg/http/usecases"
	"github.com/FraserParlane/road-names/pkg/kvdb"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	fetcher_di.New,
)

var rendererSet = wire.NewSet(
	defaultSet,
	NewRenderingService,
	NewRenderAPIServer,
)

func NewRenderingService(log *zap.Logger, f *fetcher.Fetcher, kv *kvdb.KVDB) controllers.RenderService {
	return usecases.New(log, f, kv)
}

func NewRenderAPIServer(ctx context.Context, cfg *config.Config, log *zap.Logger,
	renderService controllers.RenderService) (*roadHttp.Server, error) {
	api := roadHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, renderService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeRenderService() (*roadHttp.Server, func(), error) {

	panic(wire.Build(rendererSet))
}
