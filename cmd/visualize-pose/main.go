package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hasanfaesal/fight-judge/internal/infra/config"
	"github.com/hasanfaesal/fight-judge/internal/infra/opencv"
	"github.com/hasanfaesal/fight-judge/internal/usecase"
	"github.com/hasanfaesal/fight-judge/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	fatalOnErr(err, "load config")

	outputDir := flag.String("output_dir", cfg.VisOutputDir, "directory to save the visualized images")
	logLevel := flag.String("log_level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options] <data_dir>\n\nOverlay YOLO pose annotations on a dataset split (a directory with images/ and labels/ subdirectories).\n\nOptions:\n",
			os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	dataDir := flag.Arg(0)

	log, err := logger.New(*logLevel)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	renderer := opencv.NewRenderer(opencv.Style{
		BoxThickness:   cfg.BoxThickness,
		LineThickness:  cfg.LineThickness,
		KeypointRadius: cfg.KeypointRadius,
	})
	viz := usecase.NewVisualizer(renderer, log)

	if _, err := viz.Execute(context.Background(), dataDir, *outputDir); err != nil {
		log.Error("visualization failed", zap.Error(err))
		os.Exit(1)
	}
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
