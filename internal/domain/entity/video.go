package entity

// VideoMetadata describes a video source as reported by the decoder. The
// frame count comes from container metadata and can under- or over-count;
// callers must treat it as advisory and rely on the stream's end-of-stream
// signal instead.
type VideoMetadata struct {
	Width         int
	Height        int
	FPS           float64
	FrameCount    int
	Duration      float64 // seconds, 0 when FPS is unknown
	Codec         string  // FourCC
	FileSizeBytes int64
}
