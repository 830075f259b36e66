package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/hasanfaesal/fight-judge/internal/infra/config"
	"github.com/hasanfaesal/fight-judge/internal/infra/opencv"
	"github.com/hasanfaesal/fight-judge/internal/runlog"
	"github.com/hasanfaesal/fight-judge/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("Enter the path to your video file: ")
	scanner.Scan()
	videoPath := strings.TrimSpace(scanner.Text())

	fmt.Printf("Enter output folder name (press Enter for '%s'): ", cfg.FramesOutputDir)
	scanner.Scan()
	outputDir := strings.TrimSpace(scanner.Text())
	if outputDir == "" {
		outputDir = cfg.FramesOutputDir
	}

	// The output directory is created before anything else so the run log
	// can be written even when the video turns out to be missing.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	log, err := runlog.New(outputDir, level)
	if err != nil {
		return fmt.Errorf("create run log: %w", err)
	}
	defer log.Close()

	extractor := usecase.NewFrameExtractor(opencv.NewOpener(cfg.JPEGQuality), cfg.ProgressEvery)

	if _, err := extractor.Execute(context.Background(), videoPath, outputDir, log); err != nil {
		// Execute already reported the failure through the run log.
		return err
	}

	fmt.Printf("\nLog file saved: %s\n", log.Path)
	return nil
}
