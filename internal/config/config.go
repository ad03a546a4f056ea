// Package config предоставляет структуры и функцию для парсинга и загрузки
// конфигурации шлюза из yaml-файла, путь до которого задаётся переменной
// окружения CONFIG_PATH.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — общая структура настроек шлюза.
type Config struct {
	Env             string `yaml:"env" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	Endpoints       `yaml:"endpoints"`
	RedisConnection `yaml:"redis_connection"`
	SessionStore    `yaml:"session_store"`
}

// HTTPServer — настройки HTTP-сервера шлюза.
type HTTPServer struct {
	AddressHTTP string        `yaml:"address" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Endpoints — базовые URL двух удалённых эндпоинтов и таймаут соединения
// исходящего клиента.
type Endpoints struct {
	AuthURL    string        `yaml:"auth_url" env:"AUTH_ENDPOINT_URL"`
	MastersURL string        `yaml:"masters_url" env:"MASTERS_ENDPOINT_URL"`
	Timeout    time.Duration `yaml:"timeout" env-default:"10s"`
}

// RedisConnection — настройки подключения к redis для хранилища сессии.
type RedisConnection struct {
	Addr        string        `yaml:"address" env-default:"localhost:6379"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db" env-default:"0"`
	MaxRetries  int           `yaml:"max_retries" env-default:"3"`
	DialTimeout time.Duration `yaml:"dial_timeout" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env-default:"3s"`
}

// SessionStore — настройки хранилища сессии.
type SessionStore struct {
	KeyPrefix string `yaml:"key_prefix" env-default:"storefront:session:"`
}

// MustLoad загружает конфигурацию из файла CONFIG_PATH.
// При любой ошибке процесс завершается: без конфигурации шлюз не запускается.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Endpoints:\n"+
			"  AuthURL: %s\n"+
			"  MastersURL: %s\n"+
			"  Timeout: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"SessionStore:\n"+
			"  KeyPrefix: %s\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.AuthURL,
		c.MastersURL,
		c.Endpoints.Timeout,
		c.Addr,
		c.User,
		c.DB,
		c.KeyPrefix,
	)
}
