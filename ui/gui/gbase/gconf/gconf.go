package gconf

import (
	"encoding/json"
	"fmt"
	"os"

	"visualchess/ui/gui/gbase"
)

const configFile = "visualchess.json"

type Config struct {
	WindowW   int    `json:"window_w"`
	WindowH   int    `json:"window_h"`
	TileSize  int    `json:"tile_size"`
	AssetsDir string `json:"assets_dir"`
	LogLevel  string `json:"log_level"`
	Debug     bool   `json:"debug"`
}

func defaultConfig() Config {
	return Config{
		WindowW:   gbase.WindowW,
		WindowH:   gbase.WindowH,
		TileSize:  gbase.TileSize,
		AssetsDir: "assets",
		LogLevel:  "info",
		Debug:     false,
	}
}

func NewGUIConfig() (*Config, error) {
	_, err := os.Stat(configFile)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save() error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.TileSize < 32 || c.TileSize > 128 {
		c.TileSize = def.TileSize
	}
	// the board plus the side panel must fit
	if c.WindowW < c.TileSize*8+360 || c.WindowH < c.TileSize*8+80 {
		c.WindowW = def.WindowW
		c.WindowH = def.WindowH
		c.TileSize = def.TileSize
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}
