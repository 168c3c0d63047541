// Package nodekey loads a node's signing key from its configuration.
package nodekey

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tenderlite/tender-lite/app/logger"
	"github.com/tenderlite/tender-lite/util/crypto"
)

var log = logger.NewNamed("nodekey")

var (
	ErrNoKeySource        = errors.New("no signing key source configured")
	ErrAmbiguousKeySource = errors.New("both inline signing key and key file configured")
)

// Config is the signing key section of a node's configuration file.
// Exactly one of the two sources must be set.
type Config struct {
	// SigningKey is the base64 of the raw keypair bytes
	SigningKey string `yaml:"signingKey"`
	// KeyFile is the path to a tagged json key file
	KeyFile string `yaml:"keyFile"`
}

type ConfigGetter interface {
	GetNodeKey() Config
}

// Service owns the node's private key for the process lifetime.
// Close erases the key material, nothing may use the key afterwards.
type Service struct {
	key crypto.PrivateKey
}

func New(conf Config) (*Service, error) {
	key, err := load(conf)
	if err != nil {
		return nil, err
	}
	log.Info("signing key loaded", zap.String("address", key.PublicKey().Key().Address()))
	return &Service{key: key}, nil
}

func (s *Service) PrivateKey() crypto.PrivateKey {
	return s.key
}

func (s *Service) Close() error {
	s.key.Erase()
	return nil
}

func load(conf Config) (key crypto.PrivateKey, err error) {
	switch {
	case conf.SigningKey != "" && conf.KeyFile != "":
		return key, ErrAmbiguousKeySource
	case conf.SigningKey != "":
		keypair, err := crypto.DecodeKeyFromString(conf.SigningKey, crypto.NewEd25519Keypair, nil)
		if err != nil {
			return key, err
		}
		return crypto.NewPrivateKeyEd25519(keypair), nil
	case conf.KeyFile != "":
		return loadFile(conf.KeyFile)
	default:
		return key, ErrNoKeySource
	}
}

func loadFile(path string) (key crypto.PrivateKey, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return key, fmt.Errorf("read key file: %w", err)
	}
	err = json.Unmarshal(data, &key)
	crypto.ZeroBytes(data)
	if err != nil {
		return key, err
	}
	return key, nil
}
