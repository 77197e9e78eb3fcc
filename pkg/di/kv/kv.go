package kv_di

import (
	"context"

	"github.com/FraserParlane/road-names/pkg/kvdb"

	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
)

func New(ctx context.Context) (*kvdb.KVDB, error) {
	db, err := bolt.Open(viper.GetString("CACHE_DB_PATH"), 0600, nil)
	if err != nil {
		return nil, err
	}

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	cleanup := func() {
		_ = db.Close()
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		cleanup()
	}()

	return bboltKV, nil
}
