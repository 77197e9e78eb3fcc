package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/FraserParlane/road-names/pkg/di/config"
	"github.com/FraserParlane/road-names/pkg/fetcher"
	"github.com/FraserParlane/road-names/pkg/geo"
	"github.com/FraserParlane/road-names/pkg/kvdb"
	"github.com/FraserParlane/road-names/pkg/render"
	"github.com/FraserParlane/road-names/pkg/roadview"

	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	lonMin  = flag.Float64("lonmin", -123.1565, "west bound of the plotting area in degrees")
	lonMax  = flag.Float64("lonmax", -123.1381, "east bound of the plotting area in degrees")
	latMin  = flag.Float64("latmin", 49.2721, "south bound of the plotting area in degrees")
	latMax  = flag.Float64("latmax", 49.281, "north bound of the plotting area in degrees")
	width   = flag.Int("width", 1000, "canvas width in pixels, height follows the box aspect ratio")
	classes = flag.String("classes", "", "comma separated highway classes, one view per class; empty plots all roads in one view")
	outFile = flag.String("o", "roads.svg", "output svg path")
)

func main() {
	flag.Parse()

	if _, err := config.New(); err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	box, err := geo.NewGeoBox(*lonMin, *lonMax, *latMin, *latMax)
	if err != nil {
		logger.Fatal("invalid bounding box", zap.Error(err))
	}

	db, err := bolt.Open(viper.GetString("CACHE_DB_PATH"), 0600, nil)
	if err != nil {
		logger.Fatal("open cache db", zap.Error(err))
	}
	defer db.Close()

	kvDB, err := kvdb.NewKVDB(db)
	if err != nil {
		logger.Fatal("init cache db", zap.Error(err))
	}

	f := fetcher.New(kvDB, viper.GetString("OSM_API_URL"), viper.GetFloat64("OSM_RATE_LIMIT"), logger)

	raw, err := f.MapData(context.Background(), box)
	if err != nil {
		logger.Fatal("fetch map data", zap.Error(err))
	}

	doc, err := geo.ParseOSM(raw)
	if err != nil {
		logger.Fatal("parse map data", zap.Error(err))
	}

	var classList []string
	for _, class := range strings.Split(*classes, ",") {
		if class = strings.TrimSpace(class); class != "" {
			classList = append(classList, class)
		}
	}

	var views []roadview.View
	if len(classList) == 0 {
		views = []roadview.View{
			roadview.NewView("roads", []roadview.Tag{roadview.NewTag("highway")}, nil),
		}
	} else {
		views = roadview.ViewsForKey("highway", classList)
	}

	canvas := roadview.Canvas{Width: *width, Height: box.CanvasHeight(*width)}

	results, err := roadview.Run(doc, views, box, canvas)
	if err != nil {
		logger.Fatal("process map data", zap.Error(err))
	}

	out, err := os.Create(*outFile)
	if err != nil {
		logger.Fatal("create output file", zap.Error(err))
	}
	defer out.Close()

	if err := render.SVG(out, results, canvas, render.DefaultOptions()); err != nil {
		logger.Fatal("write svg", zap.Error(err))
	}

	for _, res := range results {
		logger.Info("view rendered",
			zap.String("view", res.Name),
			zap.Int("ways", len(res.Lines)),
		)
	}
	logger.Info("done", zap.String("file", *outFile),
		zap.Int("width", canvas.Width), zap.Int("height", canvas.Height))
}
