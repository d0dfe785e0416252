package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Default upstream endpoints. Both can be overridden from the environment,
// which is also how tests point the clients at local servers.
const (
	DefaultOpenAIBaseURL    = "https://api.openai.com/v1"
	DefaultAIGatewayBaseURL = "https://ai.gateway.lovable.dev/v1"

	QuoteModel    = "gpt-4o-mini"
	AnalysisModel = "google/gemini-2.5-flash"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// OpenAIBaseURL returns the chat-completions endpoint used for quote generation
func OpenAIBaseURL() string {
	return GetEnv("OPENAI_BASE_URL", DefaultOpenAIBaseURL)
}

// AIGatewayBaseURL returns the chat-completions endpoint used for land analysis
func AIGatewayBaseURL() string {
	return GetEnv("AI_GATEWAY_BASE_URL", DefaultAIGatewayBaseURL)
}
