package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var cfgFile = "chess-game/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

// Config is the user-facing configuration the decision core reads but does
// not own: who plays each side, how deep the engine searches, and how much
// wall-clock time one decision may take.
type Config struct {
	WhiteHuman bool `json:"white_human"`
	BlackHuman bool `json:"black_human"`
	Depth      int  `json:"depth"`
	MoveTimeMs int  `json:"move_time_ms"`
}

var DefaultConfig = Config{
	WhiteHuman: true,
	BlackHuman: false,
	Depth:      3,
	MoveTimeMs: 3000,
}

// InitConfig loads the config file from the XDG config directory, falling
// back to defaults when no file exists.
func InitConfig() (*Config, error) {
	var config = DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Depth < 1 || c.Depth > 5 {
		return &InvalidConfig{fmt.Sprintf("depth %d outside 1-5", c.Depth)}
	}
	if c.MoveTimeMs <= 0 {
		return &InvalidConfig{"move_time_ms must be positive"}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func readCfgFile(filePath string, config *Config) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return
	}
	json.Unmarshal(data, config)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}
