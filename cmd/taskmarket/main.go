package main

import (
	"log"

	"github.com/ibeloyar/taskmarket/internal/app"
	"github.com/ibeloyar/taskmarket/internal/config"
	"github.com/ibeloyar/taskmarket/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		log.Fatal(err)
	}
}
