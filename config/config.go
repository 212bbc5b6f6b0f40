package config

import (
	"encoding/json"
	"os"
	"strings"
)

// Config holds runtime configuration for the annotator.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`
	// Seconds between runtime diagnostics log lines when Debug is set.
	DebugIntervalSeconds int    `json:"debug_interval_seconds"`
	LogLevel             string `json:"log_level"`

	// Directory layout
	ImagesRoot  string `json:"images_root"`
	OutputRoot  string `json:"output_root"`
	ClassesFile string `json:"classes_file"`

	// Image files matched by extension, case-insensitive.
	SupportedExtensions []string `json:"supported_extensions"`

	// Image panel sizing. Images larger than the max are fitted for display;
	// the panel never shrinks below the min.
	CanvasMinWidth  int `json:"canvas_min_width"`
	CanvasMinHeight int `json:"canvas_min_height"`
	CanvasMaxWidth  int `json:"canvas_max_width"`
	CanvasMaxHeight int `json:"canvas_max_height"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                false,
		DebugIntervalSeconds: 5,
		LogLevel:             "info",
		ImagesRoot:           "./Images",
		OutputRoot:           "./Labels",
		ClassesFile:          "classes.txt",
		SupportedExtensions:  []string{".jpg", ".png"},
		CanvasMinWidth:       400,
		CanvasMinHeight:      400,
		CanvasMaxWidth:       1280,
		CanvasMaxHeight:      800,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.DebugIntervalSeconds <= 0 {
		c.DebugIntervalSeconds = d.DebugIntervalSeconds
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if strings.TrimSpace(c.ImagesRoot) == "" {
		c.ImagesRoot = d.ImagesRoot
	}
	if strings.TrimSpace(c.OutputRoot) == "" {
		c.OutputRoot = d.OutputRoot
	}
	if strings.TrimSpace(c.ClassesFile) == "" {
		c.ClassesFile = d.ClassesFile
	}
	exts := make([]string, 0, len(c.SupportedExtensions))
	for _, e := range c.SupportedExtensions {
		e = strings.ToLower(strings.TrimSpace(e))
		e = strings.TrimPrefix(e, "*")
		if e == "" || e == "." {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	if len(exts) == 0 {
		exts = d.SupportedExtensions
	}
	c.SupportedExtensions = exts
	if c.CanvasMinWidth <= 0 {
		c.CanvasMinWidth = d.CanvasMinWidth
	}
	if c.CanvasMinHeight <= 0 {
		c.CanvasMinHeight = d.CanvasMinHeight
	}
	if c.CanvasMaxWidth < c.CanvasMinWidth {
		c.CanvasMaxWidth = max(d.CanvasMaxWidth, c.CanvasMinWidth)
	}
	if c.CanvasMaxHeight < c.CanvasMinHeight {
		c.CanvasMaxHeight = max(d.CanvasMaxHeight, c.CanvasMinHeight)
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
