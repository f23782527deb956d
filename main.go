package main

import (
	"os"

	"github.com/streetbites/streetbites/cli"
	"github.com/streetbites/streetbites/config"
	"github.com/streetbites/streetbites/utils"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.LogLevel)

	app, err := cli.NewApp(cfg, os.Stdout)
	if err != nil {
		utils.ErrorLogger.Fatal(err)
	}

	if err := app.Run(os.Args[1:]); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
