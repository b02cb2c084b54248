package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"

	AttachmentStorageNone  = "none"
	AttachmentStorageLocal = "local"
	AttachmentStorageS3    = "s3"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port     int
	LogLevel string

	StoreBackend   string
	ReportsTable   string
	OperatorsTable string
	CountersTable  string

	AttachmentStorage  string
	AttachmentDir      string
	S3Bucket           string
	S3Endpoint         string
	MaxAttachmentBytes int64

	GeminiAPIKey string
	GeminiModel  string
	OracleMock   bool
}

// Load reads Config. Unset or malformed values fall back to their defaults.
func Load() Config {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}
	return Config{
		Port:     getenvInt("PORT", 8080),
		LogLevel: strings.ToLower(GetenvDefault("LOG_LEVEL", "info")),

		StoreBackend:   strings.ToLower(GetenvDefault("STORE_BACKEND", BackendMemory)),
		ReportsTable:   GetenvDefault("REPORTS_TABLE", "reports"),
		OperatorsTable: GetenvDefault("OPERATORS_TABLE", "operators"),
		CountersTable:  GetenvDefault("COUNTERS_TABLE", "counters"),

		AttachmentStorage:  strings.ToLower(GetenvDefault("ATTACHMENT_STORAGE", AttachmentStorageNone)),
		AttachmentDir:      GetenvDefault("ATTACHMENT_DIR", "./uploads"),
		S3Bucket:           GetenvDefault("S3_ATTACHMENT_BUCKET", "zakat-attachments"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		MaxAttachmentBytes: int64(getenvInt("MAX_ATTACHMENT_BYTES", 3<<20)),

		GeminiAPIKey: apiKey,
		GeminiModel:  GetenvDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		OracleMock:   IsEnabled("ORACLE_MOCK"),
	}
}

func GetenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// IsEnabled reports whether a boolean flag variable is switched on.
func IsEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
