package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	Bucket         string

	RedisAddr     string
	RedisPassword string

	JWTPublicKey string

	// Orphan assets older than this with no owner link are reclaimed by the
	// background sweep.
	OrphanGracePeriod time.Duration
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("ASSETS_BUCKET", "assets")
	viper.SetDefault("ORPHAN_GRACE_PERIOD", 3600)

	for _, key := range []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
	} {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	return &Settings{
		MariaDBDSN:        viper.GetString("MARIADB_DSN"),
		MaxOpenConns:      viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:      viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime:   time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:        viper.GetInt("SERVER_PORT"),
		MinioEndpoint:     viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:    viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:    viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:       viper.GetBool("MINIO_USE_SSL"),
		Bucket:            viper.GetString("ASSETS_BUCKET"),
		RedisAddr:         viper.GetString("REDIS_ADDR"),
		RedisPassword:     viper.GetString("REDIS_PASSWORD"),
		JWTPublicKey:      viper.GetString("JWT_PUBLIC_KEY"),
		OrphanGracePeriod: time.Duration(viper.GetInt("ORPHAN_GRACE_PERIOD")) * time.Second,
	}, nil
}
