package opencv

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"

	"github.com/hasanfaesal/fight-judge/internal/domain/entity"
	"github.com/hasanfaesal/fight-judge/internal/domain/port"
)

// Style controls stroke widths and marker size for drawn annotations.
type Style struct {
	BoxThickness   int
	LineThickness  int
	KeypointRadius int
}

// Renderer draws annotations with OpenCV primitives.
type Renderer struct {
	style Style
}

func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

func (r *Renderer) Annotate(imagePath string, objects []entity.Object, outPath string) error {
	img := gocv.IMRead(imagePath, gocv.IMReadColor)
	if img.Empty() {
		return fmt.Errorf("%s: %w", imagePath, port.ErrUnreadableImage)
	}
	defer img.Close()

	imgW, imgH := img.Cols(), img.Rows()

	for _, obj := range objects {
		tl, br := obj.Box.Corners(imgW, imgH)
		gocv.Rectangle(&img, image.Rectangle{Min: tl, Max: br}, entity.BoxColor, r.style.BoxThickness)

		if len(obj.Keypoints) == 0 {
			continue
		}
		points := make([]image.Point, len(obj.Keypoints))
		for i, kp := range obj.Keypoints {
			points[i] = kp.Pixel(imgW, imgH)
			gocv.Circle(&img, points[i], r.style.KeypointRadius, entity.KeypointColor, -1)
		}
		for _, edge := range entity.SkeletonEdges(points) {
			gocv.Line(&img, edge.P1, edge.P2, edge.Color, r.style.LineThickness)
		}
	}

	if ok := gocv.IMWrite(outPath, img); !ok {
		return fmt.Errorf("write image %s: encode failed", outPath)
	}
	return nil
}

// CopyImage writes the original bytes rather than re-encoding, so the
// output stays pixel-identical to the input.
func (r *Renderer) CopyImage(imagePath, outPath string) error {
	img := gocv.IMRead(imagePath, gocv.IMReadColor)
	if img.Empty() {
		return fmt.Errorf("%s: %w", imagePath, port.ErrUnreadableImage)
	}
	img.Close()

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("copy image: %w", err)
	}
	return nil
}
