package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/FraserParlane/road-names/pkg/geo"
	"github.com/FraserParlane/road-names/pkg/kvdb"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.openstreetmap.org"

// MapDataStore persists raw map documents keyed by bounding-box id.
type MapDataStore interface {
	SaveMapData(boxID string, raw []byte) error
	GetMapData(boxID string) ([]byte, error)
}

// Fetcher returns the raw OSM document for a bounding box, serving from
// the store when possible and downloading from the OSM map API otherwise.
// Downloads are rate limited: the OSM API asks clients to keep request
// rates low.
type Fetcher struct {
	store   MapDataStore
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
	log     *zap.Logger
}

func New(store MapDataStore, baseURL string, requestsPerSecond float64, log *zap.Logger) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Fetcher{
		store: store,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		baseURL: baseURL,
		log:     log,
	}
}

// MapData is the fetch-or-read-cache operation. The returned bytes are
// the verbatim API response, the caller parses them.
func (f *Fetcher) MapData(ctx context.Context, box geo.GeoBox) ([]byte, error) {
	raw, err := f.store.GetMapData(box.ID())
	if err == nil {
		f.log.Debug("map data served from cache", zap.String("box", box.ID()))
		return raw, nil
	}
	if !errors.Is(err, kvdb.ErrorsKeyNotExists) {
		return nil, fmt.Errorf("error when reading map data cache: %w", err)
	}

	raw, err = f.download(ctx, box)
	if err != nil {
		return nil, err
	}

	if err := f.store.SaveMapData(box.ID(), raw); err != nil {
		return nil, fmt.Errorf("error when caching map data: %w", err)
	}

	return raw, nil
}

func (f *Fetcher) download(ctx context.Context, box geo.GeoBox) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("error when waiting for rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/api/0.6/map?bbox=%s", f.baseURL, box.BBoxParam())
	f.log.Info("downloading map data", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error when building map request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error when downloading map data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("map api returned status %d for bbox %s", resp.StatusCode, box.BBoxParam())
	}

	bar := progressbar.NewOptions64(resp.ContentLength,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]Downloading map data..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.Body); err != nil {
		return nil, fmt.Errorf("error when reading map response: %w", err)
	}

	return buf.Bytes(), nil
}
