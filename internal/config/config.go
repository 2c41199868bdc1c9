package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config contient la configuration du serveur, chargée depuis l'environnement
type Config struct {
	Port       string
	URL        string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Intervalle de rafraîchissement périodique des feeds (filet de sécurité
	// si une notification LISTEN/NOTIFY se perd)
	FeedRefreshSeconds int
	// Nombre maximal d'activités de pairs conservées dans le fil
	ActivityFeedCap int
}

// LoadConfig charge la configuration depuis les variables d'environnement
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		URL:                getEnv("PUBLIC_URL", "http://localhost:8080"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBName:             getEnv("DB_NAME", "choicecrafter"),
		FeedRefreshSeconds: getEnvInt("FEED_REFRESH_SECONDS", 60),
		ActivityFeedCap:    getEnvInt("ACTIVITY_FEED_CAP", 20),
	}

	if cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("configuration de base de données incomplète")
	}

	return cfg, nil
}

// DSN retourne la chaîne de connexion PostgreSQL
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
