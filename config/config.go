package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret       string
	DbHost          string
	DbPort          string
	DbUser          string
	DbPassword      string
	DbName          string
	ServerPort      string
	Issuer          string
	AuthEnabled     bool
	GeneratorOutput string
	SeedFile        string
	AllowedOrigins  []string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "doctypes")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("Issuer", "doctypes")

	AuthEnabled, _ = strconv.ParseBool(getEnv("AUTH_ENABLED", "false"))
	GeneratorOutput = getEnv("GENERATOR_OUTPUT", "./generated")
	SeedFile = getEnv("SEED_FILE", "")

	origins := getEnv("ALLOWED_ORIGINS", "")
	AllowedOrigins = nil
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			AllowedOrigins = append(AllowedOrigins, o)
		}
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
