package kvdb

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/FraserParlane/road-names/pkg/roadview"

	"github.com/klauspost/compress/gzip"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_MAPDATA_BUCKET = "mapData"
	BBOLTDB_RENDER_BUCKET  = "renderCache"
)

// KVDB stores raw map documents and cached render results in bbolt. Raw
// documents are gzip-compressed (OSM XML compresses well), render results
// are msgpack-encoded.
type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_MAPDATA_BUCKET)); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_RENDER_BUCKET)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error when creating buckets: %w", err)
	}

	return &KVDB{db, sync.Mutex{}}, nil
}

// SaveMapData stores the raw bytes for one bounding box, keyed by the
// box id.
func (db *KVDB) SaveMapData(boxID string, raw []byte) error {
	db.Lock()
	defer db.Unlock()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return fmt.Errorf("error when compressing map data: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("error when compressing map data: %w", err)
	}

	return db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_MAPDATA_BUCKET))
		return b.Put([]byte(boxID), buf.Bytes())
	})
}

func (db *KVDB) GetMapData(boxID string) (raw []byte, err error) {
	err = db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_MAPDATA_BUCKET))
		compressed := b.Get([]byte(boxID))
		if compressed == nil {
			return ErrorsKeyNotExists
		}

		zr, zerr := gzip.NewReader(bytes.NewReader(compressed))
		if zerr != nil {
			return fmt.Errorf("error when decompressing map data: %w", zerr)
		}
		defer zr.Close()

		raw, zerr = io.ReadAll(zr)
		if zerr != nil {
			return fmt.Errorf("error when decompressing map data: %w", zerr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// SaveRender caches projected view results under a render key.
func (db *KVDB) SaveRender(key string, results []roadview.ViewResult) error {
	db.Lock()
	defer db.Unlock()

	encoded, err := msgpack.Marshal(results)
	if err != nil {
		return fmt.Errorf("error when encoding render results: %w", err)
	}

	return db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_RENDER_BUCKET))
		return b.Put([]byte(key), encoded)
	})
}

func (db *KVDB) GetRender(key string) (results []roadview.ViewResult, err error) {
	err = db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_RENDER_BUCKET))
		encoded := b.Get([]byte(key))
		if encoded == nil {
			return ErrorsKeyNotExists
		}
		return msgpack.Unmarshal(encoded, &results)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// RenderKey fingerprints one render request: box, view definitions in
// registration order, and canvas width. Every component is length
// prefixed, so names and tag values containing the separator characters
// cannot collide with a differently structured view set.
func RenderKey(boxID string, views []roadview.View, canvasWidth int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%s|w%d", len(boxID), boxID, canvasWidth)
	for _, view := range views {
		fmt.Fprintf(&sb, "|%d:%s", len(view.Name), view.Name)
		for _, tag := range view.Required {
			fmt.Fprintf(&sb, "+%d:%s=%d:%s", len(tag.Key), tag.Key, len(tag.Value), tag.Value)
		}
		for _, tag := range view.Forbidden {
			fmt.Fprintf(&sb, "-%d:%s=%d:%s", len(tag.Key), tag.Key, len(tag.Value), tag.Value)
		}
	}
	return sb.String()
}
