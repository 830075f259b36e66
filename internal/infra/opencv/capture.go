package opencv

import (
	"fmt"
	"os"

	"gocv.io/x/gocv"

	"github.com/hasanfaesal/fight-judge/internal/domain/entity"
	"github.com/hasanfaesal/fight-judge/internal/domain/port"
)

// Opener opens videos through OpenCV's VideoCapture.
type Opener struct {
	jpegQuality int
}

func NewOpener(jpegQuality int) *Opener {
	return &Opener{jpegQuality: jpegQuality}
}

func (o *Opener) Open(path string) (port.VideoStream, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat video: %w", err)
	}

	vc, err := gocv.OpenVideoCapture(path)
	if err != nil {
		return nil, fmt.Errorf("open video: %w", err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("open video %s: decoder could not open file", path)
	}

	fps := vc.Get(gocv.VideoCaptureFPS)
	frameCount := int(vc.Get(gocv.VideoCaptureFrameCount))
	duration := 0.0
	if fps > 0 {
		duration = float64(frameCount) / fps
	}

	return &capture{
		vc:  vc,
		buf: gocv.NewMat(),
		meta: entity.VideoMetadata{
			Width:         int(vc.Get(gocv.VideoCaptureFrameWidth)),
			Height:        int(vc.Get(gocv.VideoCaptureFrameHeight)),
			FPS:           fps,
			FrameCount:    frameCount,
			Duration:      duration,
			Codec:         vc.CodecString(),
			FileSizeBytes: info.Size(),
		},
		jpegQuality: o.jpegQuality,
	}, nil
}

type capture struct {
	vc          *gocv.VideoCapture
	buf         gocv.Mat
	meta        entity.VideoMetadata
	jpegQuality int
}

func (c *capture) Metadata() entity.VideoMetadata {
	return c.meta
}

func (c *capture) SaveNextFrame(path string) (bool, error) {
	if ok := c.vc.Read(&c.buf); !ok || c.buf.Empty() {
		return false, nil
	}
	params := []int{gocv.IMWriteJpegQuality, c.jpegQuality}
	if ok := gocv.IMWriteWithParams(path, c.buf, params); !ok {
		return true, fmt.Errorf("write frame %s: encode failed", path)
	}
	return true, nil
}

func (c *capture) Close() error {
	c.buf.Close()
	return c.vc.Close()
}
