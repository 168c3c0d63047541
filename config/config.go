package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tenderlite/tender-lite/app/logger"
	"github.com/tenderlite/tender-lite/nodekey"
	"github.com/tenderlite/tender-lite/util/crypto"
)

func NewFromFile(path string) (c *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// parse scrubs data on all paths: the config may carry the inline
// signing key, so the raw bytes count as key material.
func parse(data []byte) (c *Config, err error) {
	c = &Config{}
	err = yaml.Unmarshal(data, c)
	crypto.ZeroBytes(data)
	if err != nil {
		return nil, err
	}
	return
}

type Config struct {
	Log     logger.Config  `yaml:"log"`
	NodeKey nodekey.Config `yaml:"nodeKey"`
}

func (c Config) GetNodeKey() nodekey.Config {
	return c.NodeKey
}

func (c Config) GetLog() logger.Config {
	return c.Log
}
