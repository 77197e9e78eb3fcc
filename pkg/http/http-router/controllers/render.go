package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/FraserParlane/road-names/pkg/geo"
	helper "github.com/FraserParlane/road-names/pkg/http/http-router/router-helper"
	"github.com/FraserParlane/road-names/pkg/http/usecases"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

type renderAPI struct {
	renderService RenderService
	log           *zap.Logger
}

func New(renderService RenderService, log *zap.Logger) *renderAPI {
	return &renderAPI{
		renderService: renderService,
		log:           log,
	}
}

func (api *renderAPI) Routes(group *helper.RouteGroup) {
	group.GET("/render", api.render)
}

// renderRequest carries the query parameters of one render call.
type renderRequest struct {
	LonMin float64 `validate:"min=-180,max=180"`
	LonMax float64 `validate:"min=-180,max=180"`
	LatMin float64 `validate:"min=-90,max=90"`
	LatMax float64 `validate:"min=-90,max=90"`
	Width  int     `validate:"required,min=16,max=8192"`
}

// render draws the roads inside a bounding box as SVG.
//
// GET /api/render?lon_min=&lon_max=&lat_min=&lat_max=&width=&classes=residential,primary
func (api *renderAPI) render(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	var request renderRequest
	var err error
	if request.LonMin, err = strconv.ParseFloat(query.Get("lon_min"), 64); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("lon_min: %w", err))
		return
	}
	if request.LonMax, err = strconv.ParseFloat(query.Get("lon_max"), 64); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("lon_max: %w", err))
		return
	}
	if request.LatMin, err = strconv.ParseFloat(query.Get("lat_min"), 64); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("lat_min: %w", err))
		return
	}
	if request.LatMax, err = strconv.ParseFloat(query.Get("lat_max"), 64); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("lat_max: %w", err))
		return
	}
	request.Width = 1000
	if widthParam := query.Get("width"); widthParam != "" {
		if request.Width, err = strconv.Atoi(widthParam); err != nil {
			api.BadRequestResponse(w, r, fmt.Errorf("width: %w", err))
			return
		}
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	box, err := geo.NewGeoBox(request.LonMin, request.LonMax, request.LatMin, request.LatMax)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	classes := splitClasses(query.Get("classes"))

	svg, err := api.renderService.RenderSVG(r.Context(), usecases.RenderParams{
		Box:            box,
		CanvasWidth:    request.Width,
		HighwayClasses: classes,
	})
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		api.log.Error("failed to write SVG response", zap.Error(err))
	}
}

// splitClasses drops empty entries, so a stray comma cannot turn a class
// view into a key-only criterion matching every highway way.
func splitClasses(param string) []string {
	var classes []string
	for _, class := range strings.Split(param, ",") {
		if class = strings.TrimSpace(class); class != "" {
			classes = append(classes, class)
		}
	}
	return classes
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		errs = append(errs, fmt.Errorf("%s", e.Translate(trans)))
	}
	return errs
}
