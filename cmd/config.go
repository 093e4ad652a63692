package main

import (
	"os"

	"github.com/ericzzh/mattermost-plugin-offboard/server/config"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const defaultPluginId = "com.github.ericzzh.mattermost-plugin-offboard"

var supportedDrivers = map[string]bool{
	model.DatabaseDriverPostgres: true,
	model.DatabaseDriverMysql:    true,
	"sqlite":                     true,
}

// Config is the YAML configuration of the command line tool.
type Config struct {
	SQL struct {
		Driver     string `yaml:"driver"`
		DataSource string `yaml:"dataSource"`
	} `yaml:"sql"`

	Files struct {
		Driver    string `yaml:"driver"`
		Directory string `yaml:"directory"`

		S3Bucket          string `yaml:"s3Bucket"`
		S3PathPrefix      string `yaml:"s3PathPrefix"`
		S3Region          string `yaml:"s3Region"`
		S3Endpoint        string `yaml:"s3Endpoint"`
		S3AccessKeyId     string `yaml:"s3AccessKeyId"`
		S3SecretAccessKey string `yaml:"s3SecretAccessKey"`
		S3SSL             bool   `yaml:"s3SSL"`
	} `yaml:"files"`

	Tracing struct {
		// Endpoint is the OTLP HTTP collector spans are exported to, tracing is off when empty.
		Endpoint string `yaml:"endpoint"`
	} `yaml:"tracing"`

	ErasureMode      string `yaml:"erasureMode"`
	SystemUserId     string `yaml:"systemUserId"`
	RemovedUserAlias string `yaml:"removedUserAlias"`
	// PluginId is the key value namespace the intents are kept under.
	PluginId string `yaml:"pluginId"`
}

// LoadConfig reads the file at path. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	c.setDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) setDefaults() {
	if c.Files.Driver == "" {
		c.Files.Driver = model.ImageDriverLocal
	}
	if c.Files.Directory == "" && c.Files.Driver == model.ImageDriverLocal {
		c.Files.Directory = "./data/"
	}
	if c.ErasureMode == "" {
		c.ErasureMode = config.ErasureModeDelete
	}
	if c.RemovedUserAlias == "" {
		c.RemovedUserAlias = config.DefaultRemovedUserAlias
	}
	if c.PluginId == "" {
		c.PluginId = defaultPluginId
	}
}

func (c *Config) validate() error {
	if !supportedDrivers[c.SQL.Driver] {
		return errors.Errorf("unsupported sql driver %q", c.SQL.Driver)
	}
	if c.SQL.DataSource == "" {
		return errors.New("sql data source is not set")
	}
	if c.Files.Driver != model.ImageDriverLocal && c.Files.Driver != model.ImageDriverS3 {
		return errors.Errorf("unsupported file driver %q", c.Files.Driver)
	}
	return nil
}

// PluginConfiguration is the part of the config the plugin keeps in its settings.
func (c *Config) PluginConfiguration() *config.Configuration {
	return &config.Configuration{
		BotUserID:        c.SystemUserId,
		ErasureMode:      c.ErasureMode,
		RemovedUserAlias: c.RemovedUserAlias,
	}
}

// FileSettings converts the file section into server file settings.
func (c *Config) FileSettings() *model.FileSettings {
	fs := &model.FileSettings{}
	fs.SetDefaults(false)

	fs.DriverName = model.NewString(c.Files.Driver)
	fs.Directory = model.NewString(c.Files.Directory)
	fs.AmazonS3Bucket = model.NewString(c.Files.S3Bucket)
	fs.AmazonS3PathPrefix = model.NewString(c.Files.S3PathPrefix)
	fs.AmazonS3Region = model.NewString(c.Files.S3Region)
	fs.AmazonS3Endpoint = model.NewString(c.Files.S3Endpoint)
	fs.AmazonS3AccessKeyId = model.NewString(c.Files.S3AccessKeyId)
	fs.AmazonS3SecretAccessKey = model.NewString(c.Files.S3SecretAccessKey)
	fs.AmazonS3SSL = model.NewBool(c.Files.S3SSL)
	return fs
}
