package config

import "os"

// Config holds all process-wide settings, fixed at startup.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	// JWTSecret signs every token this process issues; it is never rotated
	// while the process is running.
	JWTSecret string

	AdminName     string
	AdminEmail    string
	AdminPassword string

	StorageDriver string // "local" or "minio"
	UploadDir     string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment with working defaults.
func Load() *Config {
	return &Config{
		Port:     getenv("PORT", "5000"),
		MongoURI: getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getenv("MONGO_DB", "ecomm"),

		JWTSecret: getenv("JWT_SECRET", "e-comm"),

		AdminName:     getenv("ADMIN_NAME", "Admin"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "jkl@123"),

		StorageDriver: getenv("STORAGE_DRIVER", "local"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getenv("MINIO_BUCKET", "product-images"),
	}
}
