package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"docsummary/internal/logger"
)

type CLI struct {
	Serve     ServeCommand     `cmd:"serve" default:"1" help:"Start the upload and summarize web server."`
	Summarize SummarizeCommand `cmd:"summarize" help:"Summarize a local file and print the JSON response."`
	Version   VersionCommand   `cmd:"version" help:"Print the version."`
}

// @title       Document Summarizer API
// @version     1.0
// @description Upload an image, PDF or Word document and get an AI generated summary.
// @BasePath    /
func main() {
	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli,
		kong.Name("docsummary"),
		kong.Description("Summarize uploaded files with a generative AI model."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err := kctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		log := logger.NewWithWriter(os.Stderr, "error", time.UTC)
		log.Error("command_failed", zap.String("command", kctx.Command()), zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
