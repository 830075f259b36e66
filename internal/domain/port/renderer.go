package port

import (
	"errors"

	"github.com/hasanfaesal/fight-judge/internal/domain/entity"
)

// ErrUnreadableImage marks an image file that cannot be decoded. Callers
// skip the file and continue the batch.
var ErrUnreadableImage = errors.New("unreadable image")

// Renderer composites annotations onto images.
type Renderer interface {
	// Annotate reads the image at imagePath, draws the objects' bounding
	// boxes, keypoint markers and skeleton lines, and writes the result
	// to outPath.
	Annotate(imagePath string, objects []entity.Object, outPath string) error

	// CopyImage verifies the image decodes and writes a byte-verbatim
	// copy to outPath.
	CopyImage(imagePath, outPath string) error
}
