package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Annomy111/foerder-finder/internal/buildinfo"
	"github.com/Annomy111/foerder-finder/internal/client/cli"
	"github.com/Annomy111/foerder-finder/internal/client/config"
	"github.com/Annomy111/foerder-finder/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault(slog.LevelWarn))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
