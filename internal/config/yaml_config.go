package config

import "github.com/rewardvault/reward-vault-go/internal/types"

// YAMLConfig represents the application's configuration.
type YAMLConfig struct {
	WorkingDir string              `yaml:"working_dir"`
	Vault      types.VaultConfig   `yaml:"vault"`
	Pool       types.ConfigCatalog `yaml:"pool"`
	WAL        YAMLConfigWAL       `yaml:"wal"`
}

// YAMLConfigWAL represents the configuration for the WAL.
type YAMLConfigWAL struct {
	MaxFileSize   int    `yaml:"max_file_size"`
	MaxBufferSize int    `yaml:"max_buffer_size"`
	Formatter     string `yaml:"formatter"`
}
