package fetcher_di

import (
	"github.com/FraserParlane/road-names/pkg/fetcher"
	"github.com/FraserParlane/road-names/pkg/kvdb"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func New(store *kvdb.KVDB, log *zap.Logger) *fetcher.Fetcher {
	return fetcher.New(
		store,
		viper.GetString("OSM_API_URL"),
		viper.GetFloat64("OSM_RATE_LIMIT"),
		log,
	)
}
