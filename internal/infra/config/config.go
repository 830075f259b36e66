package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	FramesOutputDir string `env:"FRAMES_OUTPUT_DIR" envDefault:"extracted_frames"`
	VisOutputDir    string `env:"VIS_OUTPUT_DIR"    envDefault:"output_visualizations"`

	JPEGQuality   int `env:"JPEG_QUALITY"   envDefault:"95"`
	ProgressEvery int `env:"PROGRESS_EVERY" envDefault:"100"`

	BoxThickness   int `env:"BOX_THICKNESS"   envDefault:"2"`
	LineThickness  int `env:"LINE_THICKNESS"  envDefault:"2"`
	KeypointRadius int `env:"KEYPOINT_RADIUS" envDefault:"5"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
