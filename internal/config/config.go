package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret      string
	Issuer         string
	TokenTTL       time.Duration
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbSSLMode      string
	ServerPort     string
	LogLevel       string
	LogFormat      string
	CORSOrigins    []string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ProfileTTL     = 10 * time.Minute
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	UploadMaxBytes int64
	AuditRetention = 90
	IsProduction   bool
	CleanupInAPI   = true

	// Club roles allowed to manage projects, recruitment forms and rosters.
	ClubManageRoles = []string{"owner", "admin"}
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "clubhub")
	TokenTTL = getDuration("TOKEN_TTL", 24*time.Hour)
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "clubhub")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")
	ServerPort = getEnv("SERVER_PORT", "8080")
	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "json")
	IsProduction = getEnv("APP_ENV", "development") == "production"
	CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:,http://127.0.0.1:"))

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB, _ = strconv.Atoi(getEnv("REDIS_DB", "0"))

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "clubhub-uploads")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	UploadMaxBytes, _ = strconv.ParseInt(getEnv("UPLOAD_MAX_BYTES", "10485760"), 10, 64)
	CleanupInAPI, _ = strconv.ParseBool(getEnv("CLEANUP_IN_API", "true"))
	if n, err := strconv.Atoi(getEnv("AUDIT_RETENTION_DAYS", "")); err == nil && n > 0 {
		AuditRetention = n
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
