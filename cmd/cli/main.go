package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mindful-ai-dude/multilingo/internal/buildinfo"
	"github.com/mindful-ai-dude/multilingo/internal/cli"
	"github.com/mindful-ai-dude/multilingo/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// optional .env with GEMINI_API_KEY and friends
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
