package controllers

import (
	"context"

	"github.com/FraserParlane/road-names/pkg/http/usecases"
)

type RenderService interface {
	RenderSVG(ctx context.Context, params usecases.RenderParams) ([]byte, error)
}
