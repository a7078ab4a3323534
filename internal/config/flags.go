package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagCoords   = flag.String("coords", "", "Coordinate convention (y-up or z-up)")
	flagDistance = flag.Float64("distance", 0, "Camera distance for region poses")
	flagCorner   = flag.String("corner", "", "Overlay corner (top-left, top-right, bottom-left, bottom-right)")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCoords != "" {
		cfg.Cube.CoordinateSystem = *flagCoords
	}
	if *flagDistance > 0 {
		cfg.Cube.CameraDistance = float32(*flagDistance)
	}
	if *flagCorner != "" {
		cfg.Cube.Corner = *flagCorner
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
