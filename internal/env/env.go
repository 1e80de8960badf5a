package env

import (
	"os"
	"strings"
	"time"
)

const (
	environmentVariableNameAccessKeyID     = "ALIBABA_CLOUD_ACCESS_KEY_ID"
	environmentVariableNameAccessKeySecret = "ALIBABA_CLOUD_ACCESS_KEY_SECRET"
	environmentVariableNameConfigFile      = "ALIVOD_CONFIG_FILE"
	environmentVariableNameProfile         = "ALIVOD_PROFILE"
	environmentVariableNameEndpoint        = "ALIVOD_ENDPOINT"
	environmentVariableNameTimeout         = "ALIVOD_TIMEOUT"
	environmentVariableNameDebug           = "ALIVOD_DEBUG"
)

func CredentialsFromEnvironment() (string, string) {
	accessKeyID := os.Getenv(environmentVariableNameAccessKeyID)
	accessKeySecret := os.Getenv(environmentVariableNameAccessKeySecret)
	if accessKeyID == "" || accessKeySecret == "" {
		return "", ""
	}
	return accessKeyID, accessKeySecret
}

func ConfigFileFromEnvironment() string {
	return os.Getenv(environmentVariableNameConfigFile)
}

func ProfileFromEnvironment() string {
	return os.Getenv(environmentVariableNameProfile)
}

func EndpointFromEnvironment() string {
	return strings.TrimSpace(os.Getenv(environmentVariableNameEndpoint))
}

// TimeoutFromEnvironment 返回 ALIVOD_TIMEOUT 的值，格式同 time.ParseDuration
func TimeoutFromEnvironment() (time.Duration, bool) {
	value := strings.TrimSpace(os.Getenv(environmentVariableNameTimeout))
	if value == "" {
		return 0, false
	}
	timeout, err := time.ParseDuration(value)
	if err != nil || timeout <= 0 {
		return 0, false
	}
	return timeout, true
}

func DebugFromEnvironment() (bool, bool) {
	value := strings.ToLower(os.Getenv(environmentVariableNameDebug))
	if value == "" {
		return false, false
	}
	return value == "true" || value == "yes" || value == "y" || value == "1", true
}
