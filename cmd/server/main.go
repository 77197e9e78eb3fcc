package main

import (
	"log"

	"github.com/FraserParlane/road-names/pkg/di"
)

func main() {
	server, cleanup, err := di.InitializeRenderService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Wait(); err != nil {
		server.Log.Fatal(err.Error())
	}
}
