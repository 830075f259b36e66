package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/hasanfaesal/fight-judge/internal/domain/entity"
	"github.com/hasanfaesal/fight-judge/internal/domain/port"
)

// Visualizer overlays pose annotations from a dataset's label files onto
// its images.
type Visualizer struct {
	renderer port.Renderer
	logger   *zap.Logger
}

func NewVisualizer(renderer port.Renderer, logger *zap.Logger) *Visualizer {
	return &Visualizer{renderer: renderer, logger: logger}
}

type VisualizationResult struct {
	Annotated    int // images drawn from a label file
	Copied       int // images written verbatim (no label file)
	Skipped      int // images skipped (unreadable or failed)
	LinesSkipped int // malformed label lines dropped
}

// Execute processes every file under dataDir/images in name order, writing
// results to outputDir under the original filename. A missing images/ or
// labels/ subdirectory fails the run before anything is written; individual
// bad images or label lines are skipped with a warning.
func (v *Visualizer) Execute(ctx context.Context, dataDir, outputDir string) (*VisualizationResult, error) {
	imagesDir := filepath.Join(dataDir, "images")
	labelsDir := filepath.Join(dataDir, "labels")

	for _, dir := range []string{imagesDir, labelsDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("'images' or 'labels' subdirectories not found in '%s'", dataDir)
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		absOut = outputDir
	}
	v.logger.Info("saving visualized images", zap.String("output_dir", absOut))

	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		return nil, fmt.Errorf("read images dir: %w", err)
	}

	result := &VisualizationResult{}

	// os.ReadDir sorts by filename, keeping the processing order stable.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		name := entry.Name()
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		imagePath := filepath.Join(imagesDir, name)
		labelPath := filepath.Join(labelsDir, stem+".txt")
		outPath := filepath.Join(outputDir, name)

		v.logger.Info("processing image", zap.String("image", name))
		v.processFile(imagePath, labelPath, outPath, result)
	}

	v.logger.Info("visualization complete",
		zap.Int("annotated", result.Annotated),
		zap.Int("copied", result.Copied),
		zap.Int("skipped", result.Skipped),
		zap.Int("lines_skipped", result.LinesSkipped),
	)

	return result, nil
}

func (v *Visualizer) processFile(imagePath, labelPath, outPath string, result *VisualizationResult) {
	if _, err := os.Stat(labelPath); errors.Is(err, fs.ErrNotExist) {
		if err := v.renderer.CopyImage(imagePath, outPath); err != nil {
			v.warnSkip(imagePath, err, result)
			return
		}
		v.logger.Info("no label file, copied image as is", zap.String("image", filepath.Base(imagePath)))
		result.Copied++
		return
	}

	labelFile, err := os.Open(labelPath)
	if err != nil {
		v.warnSkip(imagePath, fmt.Errorf("open label file: %w", err), result)
		return
	}
	objects, skipped, err := entity.ParseObjects(labelFile)
	labelFile.Close()
	if err != nil {
		v.warnSkip(imagePath, err, result)
		return
	}
	result.LinesSkipped += skipped
	if skipped > 0 {
		v.logger.Warn("skipped malformed label lines",
			zap.String("label", filepath.Base(labelPath)),
			zap.Int("lines", skipped),
		)
	}

	if err := v.renderer.Annotate(imagePath, objects, outPath); err != nil {
		v.warnSkip(imagePath, err, result)
		return
	}
	result.Annotated++
}

func (v *Visualizer) warnSkip(imagePath string, err error, result *VisualizationResult) {
	if errors.Is(err, port.ErrUnreadableImage) {
		v.logger.Warn("could not read image, skipping", zap.String("image", filepath.Base(imagePath)))
	} else {
		v.logger.Warn("failed to process image, skipping",
			zap.String("image", filepath.Base(imagePath)),
			zap.Error(err),
		)
	}
	result.Skipped++
}
