package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/reusedev/wp-hub/internal/consts"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

// Init loads the yaml file at filePath into GConfig. A missing file leaves the defaults in place.
func Init(filePath string) {
	config, err := os.ReadFile(filePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(err)
	}
	initFromYaml(config)
	GConfig.applyEnv()
	GConfig.setDefaults()
	err = GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	GConfig = &Config{}
	err := yaml.Unmarshal(config, GConfig)
	if err != nil {
		panic(err)
	}
}

// Default returns a verified config built from defaults only.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`
	WordPress     `yaml:"wordpress"`
	ImageHost     `yaml:"image_host"`
	Placement     `yaml:"placement"`
}

type WordPress struct {
	Timeout string `yaml:"timeout"`
}

type ImageHost struct {
	Provider   string `yaml:"provider"`
	UploadURL  string `yaml:"upload_url"`
	Timeout    string `yaml:"timeout"`
	Concurrent *bool  `yaml:"concurrent"`
	AliOss     `yaml:"ali_oss"`
}

type AliOss struct {
	AccessKeyId     string `yaml:"access_key_id"`
	AccessKeySecret string `yaml:"access_key_secret"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Directory       string `yaml:"directory"`
	URLExpires      string `yaml:"url_expires"`
}

type Placement struct {
	Strategy string `yaml:"strategy"`
}

func (c *Config) Verify() error {
	switch consts.Strategy(c.Placement.Strategy) {
	case consts.Structural, consts.Proportional:
	default:
		return fmt.Errorf("placement.strategy must be %s or %s, got %q", consts.Structural, consts.Proportional, c.Placement.Strategy)
	}
	switch consts.ImageProvider(c.ImageHost.Provider) {
	case consts.FreeImage:
	case consts.AliOSS:
		if c.AliOss.Bucket == "" || c.AliOss.Endpoint == "" {
			return fmt.Errorf("image_host.ali_oss requires bucket and endpoint")
		}
		if _, err := time.ParseDuration(c.AliOss.URLExpires); err != nil {
			return fmt.Errorf("image_host.ali_oss.url_expires: %w", err)
		}
	default:
		return fmt.Errorf("image_host.provider must be %s or %s, got %q", consts.FreeImage, consts.AliOSS, c.ImageHost.Provider)
	}
	if _, err := time.ParseDuration(c.WordPress.Timeout); err != nil {
		return fmt.Errorf("wordpress.timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.ImageHost.Timeout); err != nil {
		return fmt.Errorf("image_host.timeout: %w", err)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSize == 0 {
		c.LogMaxSize = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 5
	}
	if c.LogMaxAge == 0 {
		c.LogMaxAge = 30
	}
	if c.WordPress.Timeout == "" {
		c.WordPress.Timeout = consts.DefaultTimeout
	}
	if c.ImageHost.Provider == "" {
		c.ImageHost.Provider = consts.FreeImage.String()
	}
	if c.ImageHost.UploadURL == "" {
		c.ImageHost.UploadURL = consts.FreeImageUploadURL
	}
	if c.ImageHost.Timeout == "" {
		c.ImageHost.Timeout = consts.DefaultTimeout
	}
	if c.ImageHost.Concurrent == nil {
		concurrent := true
		c.ImageHost.Concurrent = &concurrent
	}
	if c.AliOss.URLExpires == "" {
		c.AliOss.URLExpires = "168h"
	}
	if c.Placement.Strategy == "" {
		c.Placement.Strategy = consts.Structural.String()
	}
}

func (c *Config) applyEnv() {
	c.LogLevel = getenv("WP_HUB_LOG_LEVEL", c.LogLevel)
	c.Placement.Strategy = getenv("WP_HUB_PLACEMENT", c.Placement.Strategy)
	c.ImageHost.UploadURL = getenv("WP_HUB_IMAGE_HOST_URL", c.ImageHost.UploadURL)
}

// WordPressTimeout and ImageHostTimeout are only valid after Verify.
func (c *Config) WordPressTimeout() time.Duration {
	d, _ := time.ParseDuration(c.WordPress.Timeout)
	return d
}

func (c *Config) ImageHostTimeout() time.Duration {
	d, _ := time.ParseDuration(c.ImageHost.Timeout)
	return d
}

func (c *Config) URLExpires() time.Duration {
	d, _ := time.ParseDuration(c.AliOss.URLExpires)
	return d
}

func (c *Config) ConcurrentUpload() bool {
	return c.ImageHost.Concurrent == nil || *c.ImageHost.Concurrent
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
