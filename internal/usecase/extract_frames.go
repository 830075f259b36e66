package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hasanfaesal/fight-judge/internal/domain/port"
	"github.com/hasanfaesal/fight-judge/internal/runlog"
)

const bytesPerMB = 1024 * 1024

// FrameExtractor writes every frame of a video to numbered JPEG files.
type FrameExtractor struct {
	opener        port.VideoOpener
	progressEvery int
}

func NewFrameExtractor(opener port.VideoOpener, progressEvery int) *FrameExtractor {
	return &FrameExtractor{opener: opener, progressEvery: progressEvery}
}

type ExtractionResult struct {
	FramesWritten int
	Elapsed       time.Duration
	AvgFPS        float64
}

// Execute extracts all frames of the video at videoPath into outputDir,
// which must already exist. Progress and the final summary go to log, which
// the caller owns and closes.
//
// The metadata frame count feeds the progress percentage only; the loop
// runs until the stream reports end of stream, so an inaccurate container
// count never truncates or pads the output.
func (e *FrameExtractor) Execute(ctx context.Context, videoPath, outputDir string, log *runlog.Log) (*ExtractionResult, error) {
	banner := strings.Repeat("=", 60)

	log.Info(banner)
	log.Info("VIDEO FRAME EXTRACTION STARTED")
	log.Info(banner)

	if _, err := os.Stat(videoPath); err != nil {
		log.Errorf("Video file '%s' not found!", videoPath)
		return nil, fmt.Errorf("stat video: %w", err)
	}

	log.Infof("Input video file: %s", videoPath)

	stream, err := e.opener.Open(videoPath)
	if err != nil {
		log.Errorf("Could not open video file: %v", err)
		return nil, fmt.Errorf("open video: %w", err)
	}
	defer stream.Close()

	meta := stream.Metadata()

	log.Info(banner)
	log.Info("VIDEO PROPERTIES")
	log.Info(banner)
	log.Infof("Resolution:       %d x %d pixels", meta.Width, meta.Height)
	log.Infof("Frame Rate (FPS): %.2f", meta.FPS)
	log.Infof("Total Frames:     %d", meta.FrameCount)
	log.Infof("Duration:         %.2f seconds (%.2f minutes)", meta.Duration, meta.Duration/60)
	log.Infof("Codec (FourCC):   %s", meta.Codec)
	log.Infof("File Size:        %.2f MB", float64(meta.FileSizeBytes)/bytesPerMB)
	log.Info(banner)

	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		absOut = outputDir
	}
	log.Infof("Output folder: %s", absOut)
	log.Info("Frame format: JPEG")
	log.Info("Starting frame extraction...")
	log.Info("")

	frameNumber := 0
	extracted := 0
	start := time.Now()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		framePath := filepath.Join(outputDir, fmt.Sprintf("frame_%06d.jpg", frameNumber))
		more, err := stream.SaveNextFrame(framePath)
		if !more {
			break
		}
		if err != nil {
			log.Errorf("Failed to save frame %d: %v", frameNumber, err)
			return nil, fmt.Errorf("save frame %d: %w", frameNumber, err)
		}
		extracted++

		if (frameNumber+1)%e.progressEvery == 0 || frameNumber+1 == meta.FrameCount {
			if meta.FrameCount > 0 {
				progress := float64(frameNumber+1) / float64(meta.FrameCount) * 100
				log.Infof("Progress: %d/%d frames (%.1f%%)", frameNumber+1, meta.FrameCount, progress)
			} else {
				log.Infof("Progress: %d frames", frameNumber+1)
			}
		}

		frameNumber++
	}

	elapsed := time.Since(start)
	avgFPS := 0.0
	if elapsed.Seconds() > 0 {
		avgFPS = float64(extracted) / elapsed.Seconds()
	}

	log.Info("")
	log.Info(banner)
	log.Info("EXTRACTION COMPLETE!")
	log.Info(banner)
	log.Infof("Total frames extracted: %d", extracted)
	log.Infof("Extraction time: %.2f seconds (%.2f minutes)", elapsed.Seconds(), elapsed.Minutes())
	log.Infof("Average speed: %.2f frames/second", avgFPS)
	log.Infof("Frames saved in: %s/", absOut)
	log.Info(banner)

	return &ExtractionResult{
		FramesWritten: extracted,
		Elapsed:       elapsed,
		AvgFPS:        avgFPS,
	}, nil
}
