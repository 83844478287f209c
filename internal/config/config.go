// Package config handles input from etc/*.toml files with environment
// overrides.
package config

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// envPrefix prefixes every environment override, e.g.
// REFERENCEDATA_WEBSERVER_PORT.
const envPrefix = "REFERENCEDATA"

// defaultShutDownTime in seconds, applied when the config leaves it unset.
const defaultShutDownTime = 5

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigName("main")
	v.SetConfigType("toml")
	v.AddConfigPath(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// AutomaticEnv does not reach into nested structs on Unmarshal, so the
	// secrets that matter are pulled explicitly.
	if secret := v.GetString("auth.secret"); secret != "" {
		c.Auth.Secret = secret
	}

	if password := v.GetString("db.password"); password != "" {
		c.DB.Password = password
	}

	return c, validate(&c)
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings needed to start up.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Auth.Secret == "" {
		return errors.Wrap(ErrEmptyAuthSecret, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	return nil
}
