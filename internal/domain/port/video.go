package port

import "github.com/hasanfaesal/fight-judge/internal/domain/entity"

// VideoOpener opens a video file for sequential frame reading.
type VideoOpener interface {
	Open(path string) (VideoStream, error)
}

// VideoStream is a forward-only cursor over a video's frames.
type VideoStream interface {
	Metadata() entity.VideoMetadata

	// SaveNextFrame decodes the next frame and writes it as a JPEG to
	// path. It returns false when the stream is exhausted; a decode that
	// succeeds but fails to encode returns true with an error.
	SaveNextFrame(path string) (bool, error)

	Close() error
}
