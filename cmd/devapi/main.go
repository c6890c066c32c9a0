package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophfeed/internal/buildinfo"
	"github.com/dmitrijs2005/gophfeed/internal/devapi"
	"github.com/dmitrijs2005/gophfeed/internal/devapi/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := devapi.NewApp(cfg, os.Stdout)
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
