package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment       string
	Domains           []string
	CertCacheDir      string
	HTTPPort          string
	HTTPSPort         string
	DatabaseURL       string
	ModelPath         string
	UploadMaxSize     int64
	FallbackLogPath   string
	PopplerPath       string
	StorageURL        string
	StorageKey        string
	StorageBucket     string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string
	TwilioAlertNumber string
}

var isTest bool

func init() {
	isTest = os.Getenv("GO_ENVIRONMENT") == "test"
	if !isTest {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Error loading .env file:", err)
		}
	}
}

func Load() Config {
	return Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Domains:           []string{getEnv("DOMAIN", "example.com")},
		CertCacheDir:      getEnv("CERT_CACHE_DIR", "/etc/letsencrypt/live/example.com"),
		HTTPPort:          getEnv("HTTP_PORT", "8086"),
		HTTPSPort:         getEnv("HTTPS_PORT", "443"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		ModelPath:         getEnv("CLASSIFIER_MODEL_PATH", "model_artifacts/classifier.json"),
		UploadMaxSize:     int64(getEnvAsInt("UPLOAD_MAX_SIZE", 10*1024*1024)),
		FallbackLogPath:   getEnv("FALLBACK_LOG_PATH", "failed_records.jsonl"),
		PopplerPath:       getEnv("POPPLER_PATH", ""),
		StorageURL:        getEnv("STORAGE_URL", ""),
		StorageKey:        getEnv("STORAGE_KEY", ""),
		StorageBucket:     getEnv("STORAGE_BUCKET", "documents"),
		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber:  getEnv("TWILIO_FROM_NUMBER", ""),
		TwilioAlertNumber: getEnv("TWILIO_ALERT_NUMBER", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
