package config

import (
	"encoding/json"
	"os"

	"github.com/rewardvault/reward-vault-go/internal/types"
	"gopkg.in/yaml.v3"
)

type ConfigImpl struct{}

// LoadCatalog reads a JSON seed catalog.
func (c *ConfigImpl) LoadCatalog(path string) (types.ConfigCatalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.ConfigCatalog{}, err
	}
	defer file.Close()
	var cfg types.ConfigCatalog
	err = json.NewDecoder(file).Decode(&cfg)
	return cfg, err
}

// LoadYAML reads the full application configuration.
func (c *ConfigImpl) LoadYAML(path string) (YAMLConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return YAMLConfig{}, err
	}
	defer file.Close()
	var cfg YAMLConfig
	err = yaml.NewDecoder(file).Decode(&cfg)
	return cfg, err
}
