//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/filmcast/internal/bootstrap"
	"github.com/yanqian/filmcast/internal/domain/forecast"
	"github.com/yanqian/filmcast/internal/domain/locations"
	"github.com/yanqian/filmcast/internal/domain/stores"
	"github.com/yanqian/filmcast/internal/infra/config"
	"github.com/yanqian/filmcast/internal/infra/weather/openweather"
	httpiface "github.com/yanqian/filmcast/internal/interface/http"
	"github.com/yanqian/filmcast/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideEngine,
		provideWeatherClient,
		provideLocationsConfig,
		provideStoresConfig,
		provideStoreStrategies,
		provideSearchStore,
		provideSearchRecorder,
		locations.NewService,
		stores.NewService,
		forecast.NewService,
		wire.Bind(new(forecast.WeatherClient), new(*openweather.Client)),
		wire.Bind(new(locations.Geocoder), new(*openweather.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
