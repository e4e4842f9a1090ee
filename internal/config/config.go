package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr" env:"BLOG_ADDR" env-default:":4000"`
	} `yaml:"server"`

	Database struct {
		SQLitePath string `yaml:"sqlite_path" env:"BLOG_DB_PATH" env-default:"./blog.db"`
	} `yaml:"database"`

	UI struct {
		HTMLDir   string `yaml:"html_dir" env:"BLOG_HTML_DIR" env-default:"./ui/html"`
		StaticDir string `yaml:"static_dir" env:"BLOG_STATIC_DIR" env-default:"./ui/static"`
	} `yaml:"ui"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configflag := flag.String("config", "", "Path to configuration file")
		flag.Parse()
		configPath = *configflag
	}

	var cfg Config

	// Без файла конфигурации работаем на значениях по умолчанию и переменных окружения
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("Failed to read environment config: %v", err)
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	return &cfg
}
