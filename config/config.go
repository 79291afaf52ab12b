package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `yaml:"app"`
	Server Server `yaml:"server"`
	Mongo  Mongo  `yaml:"mongo"`
}

type App struct {
	Environment string `yaml:"environment"`
}

type Server struct {
	HttpPort string `yaml:"http_port"`
}

type Mongo struct {
	URL      string `yaml:"url"`
	Database string `yaml:"database"`
}

func Load(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("app.environment", "develop")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("mongo.url", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "camera_control")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	return &Config{
		App: App{
			Environment: viper.GetString("app.environment"),
		},
		Server: Server{
			HttpPort: viper.GetString("server.port"),
		},
		Mongo: Mongo{
			URL:      viper.GetString("mongo.url"),
			Database: viper.GetString("mongo.database"),
		},
	}, nil
}
