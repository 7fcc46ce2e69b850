package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	// All variables
	GO_ENV  string
	PORT    int
	DB_PATH string
	// CORS configuration
	ALLOWED_ORIGINS string
	// Gemini configuration
	GEMINI_API_KEY  string
	GEMINI_MODEL    string
	GEMINI_BASE_URL string
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	// Store defaults
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "coursemaster.db"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:5173"
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:  os.Getenv("GO_ENV"),
		PORT:    port,
		DB_PATH: dbPath,
		// CORS
		ALLOWED_ORIGINS: allowedOrigins,
		// Gemini
		GEMINI_API_KEY:  os.Getenv("GEMINI_API_KEY"),
		GEMINI_MODEL:    os.Getenv("GEMINI_MODEL"),
		GEMINI_BASE_URL: os.Getenv("GEMINI_BASE_URL"),
	}

	return envVariables, nil
}
