package usecases

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/FraserParlane/road-names/pkg/geo"
	"github.com/FraserParlane/road-names/pkg/kvdb"
	"github.com/FraserParlane/road-names/pkg/render"
	"github.com/FraserParlane/road-names/pkg/roadview"

	"go.uber.org/zap"
)

type RenderingService struct {
	log      *zap.Logger
	provider MapDataProvider
	cache    RenderCache
}

func New(log *zap.Logger, provider MapDataProvider, cache RenderCache) *RenderingService {
	return &RenderingService{
		log:      log,
		provider: provider,
		cache:    cache,
	}
}

// RenderSVG runs the whole pipeline for one request: fetch (or read
// cached) map data, filter and project, draw. Projected results are
// cached per render fingerprint, so repeated requests skip the parse and
// projection work.
func (s *RenderingService) RenderSVG(ctx context.Context, params RenderParams) ([]byte, error) {
	views := viewsFor(params.HighwayClasses)
	canvas := roadview.Canvas{
		Width:  params.CanvasWidth,
		Height: params.Box.CanvasHeight(params.CanvasWidth),
	}

	key := kvdb.RenderKey(params.Box.ID(), views, params.CanvasWidth)

	results, err := s.cache.GetRender(key)
	if err != nil {
		if !errors.Is(err, kvdb.ErrorsKeyNotExists) {
			return nil, fmt.Errorf("error when reading render cache: %w", err)
		}

		results, err = s.process(ctx, params.Box, views, canvas)
		if err != nil {
			return nil, err
		}

		if err := s.cache.SaveRender(key, results); err != nil {
			// cache write failure does not invalidate the render.
			s.log.Warn("failed to cache render results", zap.Error(err))
		}
	} else {
		s.log.Debug("render served from cache", zap.String("key", key))
	}

	var buf bytes.Buffer
	if err := render.SVG(&buf, results, canvas, render.DefaultOptions()); err != nil {
		return nil, fmt.Errorf("error when writing svg: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *RenderingService) process(ctx context.Context, box geo.GeoBox,
	views []roadview.View, canvas roadview.Canvas) ([]roadview.ViewResult, error) {
	raw, err := s.provider.MapData(ctx, box)
	if err != nil {
		return nil, fmt.Errorf("error when fetching map data: %w", err)
	}

	doc, err := geo.ParseOSM(raw)
	if err != nil {
		return nil, err
	}

	s.log.Info("processing map document",
		zap.String("box", box.ID()),
		zap.Int("nodes", len(doc.Nodes)),
		zap.Int("ways", len(doc.Ways)),
	)

	return roadview.Run(doc, views, box, canvas)
}

func viewsFor(highwayClasses []string) []roadview.View {
	if len(highwayClasses) == 0 {
		return []roadview.View{
			roadview.NewView("roads", []roadview.Tag{roadview.NewTag("highway")}, nil),
		}
	}
	return roadview.ViewsForKey("highway", highwayClasses)
}
