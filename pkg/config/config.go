package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config regroupe la configuration de l'application (lecture via Viper depuis
// les variables d'environnement et, en option, un fichier .env).
type Config struct {
	App  AppConfig
	DB   DBConfig
	JWT  JWTConfig
	HTTP HTTPConfig
}

// AppConfig configuration générale de l'application.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig configuration du magasin SQLite embarqué.
// Path est le chemin du fichier de base ; c'est ce fichier qui est copié
// tel quel par la sauvegarde (db:backup).
type DBConfig struct {
	Path string
}

// JWTConfig configuration des jetons JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig configuration du serveur HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr renvoie l'adresse d'écoute (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lit la configuration depuis les variables d'environnement (et en option
// depuis un fichier). Les env vars sont prioritaires. Noms attendus : APP_ENV,
// DB_PATH, JWT_SECRET, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optionnel : fichier de configuration (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // on ignore l'erreur si le fichier n'existe pas

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // idem

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "papistock"),
		},
		DB: DBConfig{
			Path: getString(v, "DB_PATH", "db.sqlite"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "papistock"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
