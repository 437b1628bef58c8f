package ndimg

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the TOML configuration of the ndimg tool.
type Config struct {
	Logging LogConfig
	Image   ImageConfig
	Codec   CodecConfig
}

// ImageConfig gives the defaults for images created from the command line.
type ImageConfig struct {
	Layout   string  // "array", "planar" or "cell"
	Type     string  // pixel type name, e.g. "uint8" or "complex64"
	Dims     []int64 // default shape
	CellSize int     `toml:"cell_size"`
}

// CodecConfig selects how planes are serialized.
type CodecConfig struct {
	Compression string
	Checksum    string
}

// DefaultConfig returns the settings used when no configuration file is given.
func DefaultConfig() Config {
	return Config{
		Image: ImageConfig{
			Layout:   "planar",
			Type:     "uint8",
			Dims:     []int64{256, 256, 16},
			CellSize: 64,
		},
		Codec: CodecConfig{
			Compression: "snappy",
			Checksum:    "crc32",
		},
	}
}

// LoadConfig loads the configuration from a TOML file.  Settings absent from the
// file keep their defaults.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("no TOML configuration file provided")
	}
	c := DefaultConfig()
	if _, err := toml.DecodeFile(filename, &c); err != nil {
		return nil, fmt.Errorf("could not decode TOML config: %v", err)
	}
	if err := c.convertPathsToAbsolute(filename); err != nil {
		return nil, fmt.Errorf("could not convert relative paths to absolute paths in TOML config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	Debugf("tomlConfig: %v\n", c)
	return &c, nil
}

// DecodeConfig parses TOML configuration text.  Relative paths are left as is.
func DecodeConfig(text string) (*Config, error) {
	c := DefaultConfig()
	if _, err := toml.Decode(text, &c); err != nil {
		return nil, fmt.Errorf("could not decode TOML config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the image and codec settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Image.Layout) {
	case "array", "planar", "cell":
	default:
		return fmt.Errorf("unknown image layout %q", c.Image.Layout)
	}
	if c.Image.CellSize < 1 {
		return fmt.Errorf("cell size must be positive, got %d", c.Image.CellSize)
	}
	if len(c.Image.Dims) != 0 {
		if _, err := CheckShape(c.Image.Dims); err != nil {
			return err
		}
	}
	if _, err := ParseCompression(c.Codec.Compression); err != nil {
		return err
	}
	if _, err := ParseChecksum(c.Codec.Checksum); err != nil {
		return err
	}
	return nil
}

// Compression returns the parsed codec compression.
func (c *Config) Compression() Compression {
	compress, _ := ParseCompression(c.Codec.Compression)
	return compress
}

// Checksum returns the parsed codec checksum.
func (c *Config) Checksum() Checksum {
	checksum, _ := ParseChecksum(c.Codec.Checksum)
	return checksum
}

// Some settings in the TOML can be given as relative paths.
// This function converts them in-place to absolute paths,
// assuming the given paths were relative to the TOML file's own directory.
func (c *Config) convertPathsToAbsolute(configPath string) error {
	configDir := filepath.Dir(configPath)

	// [logging].logfile
	if c.Logging.Logfile != "" {
		var err error
		c.Logging.Logfile, err = ConvertToAbsolute(c.Logging.Logfile, configDir)
		if err != nil {
			return fmt.Errorf("Error converting logfile setting to absolute path")
		}
	}
	return nil
}

// ConvertToAbsolute returns path unchanged if absolute, otherwise joined to dir
// and made absolute.
func ConvertToAbsolute(path, dir string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Abs(filepath.Join(dir, path))
}
