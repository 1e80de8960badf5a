package configfile

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/wangjian/alivod/internal/env"
)

type profileConfig struct {
	AccessKeyID     string `toml:"access_key_id"`
	AccessKeySecret string `toml:"access_key_secret"`
	Endpoint        string `toml:"endpoint"`
	Timeout         string `toml:"timeout"`
}

var (
	profileConfigs      map[string]*profileConfig
	profileConfigsError error
	profileConfigsOnce  sync.Once
	ErrInvalidTimeout   = errors.New("invalid timeout")
)

func CredentialsFromConfigFile() (string, string, error) {
	profile, err := getProfile()
	if err != nil || profile == nil {
		return "", "", err
	} else if profile.AccessKeyID == "" || profile.AccessKeySecret == "" {
		return "", "", nil
	}
	return profile.AccessKeyID, profile.AccessKeySecret, nil
}

func EndpointFromConfigFile() (string, error) {
	profile, err := getProfile()
	if err != nil || profile == nil {
		return "", err
	}
	return profile.Endpoint, nil
}

func TimeoutFromConfigFile() (time.Duration, error) {
	profile, err := getProfile()
	if err != nil || profile == nil || profile.Timeout == "" {
		return 0, err
	}
	timeout, err := time.ParseDuration(profile.Timeout)
	if err != nil || timeout <= 0 {
		return 0, ErrInvalidTimeout
	}
	return timeout, nil
}

func getProfile() (*profileConfig, error) {
	if err := load(); err != nil {
		return nil, err
	}
	profileName := env.ProfileFromEnvironment()
	if profileName == "" {
		profileName = "default"
	}
	profile, ok := profileConfigs[profileName]
	if !ok || profile == nil {
		return nil, nil
	}
	return profile, nil
}

func load() error {
	profileConfigsOnce.Do(func() {
		profileConfigsError = _load()
	})
	return profileConfigsError
}

func _load() error {
	configFilePath := env.ConfigFileFromEnvironment()
	if configFilePath == "" {
		configFilePath = getDefaultConfigFilePath()
	}
	_, err := toml.DecodeFile(configFilePath, &profileConfigs)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func getDefaultConfigFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}
	return filepath.Join(homeDir, ".alivod", "config.toml")
}
