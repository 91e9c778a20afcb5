package main

import (
	"context"
	"log"
	"os"

	"github.com/nadocloud/nadoquest/internal/buildinfo"
	"github.com/nadocloud/nadoquest/internal/client/cli"
	"github.com/nadocloud/nadoquest/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
