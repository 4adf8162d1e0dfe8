package common

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Dirs     DirsConfig
	OCR      OCRConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// DirsConfig holds the filesystem areas the pipelines read and write.
// All five are flat directories under the data root.
type DirsConfig struct {
	DataDir      string
	UploadDir    string // incoming archives
	ImagesDir    string // extracted images
	DocumentsDir string // extracted report PDFs
	ProcessedDir string // archives that committed
	ErrorDir     string // archives that failed
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	DPI           int
	MaxPages      int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	dataDir := getEnv("DATA_DIR", "./files")
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", filepath.Join(dataDir, "screening.db")),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Dirs: DirsConfig{
			DataDir:      dataDir,
			UploadDir:    getEnv("UPLOAD_DIR", filepath.Join(dataDir, "uploaded")),
			ImagesDir:    getEnv("IMAGES_DIR", filepath.Join(dataDir, "images")),
			DocumentsDir: getEnv("DOCUMENTS_DIR", filepath.Join(dataDir, "pdfs")),
			ProcessedDir: getEnv("PROCESSED_DIR", filepath.Join(dataDir, "processed")),
			ErrorDir:     getEnv("ERROR_DIR", filepath.Join(dataDir, "processing_error")),
		},
		OCR: OCRConfig{
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	v := NewValidator()
	v.Field("DB_URL", c.Database.DSN, Required)
	v.Field("UPLOAD_DIR", c.Dirs.UploadDir, Required)
	v.Field("IMAGES_DIR", c.Dirs.ImagesDir, Required)
	v.Field("DOCUMENTS_DIR", c.Dirs.DocumentsDir, Required)
	v.Field("PROCESSED_DIR", c.Dirs.ProcessedDir, Required)
	v.Field("ERROR_DIR", c.Dirs.ErrorDir, Required)
	if v.HasErrors() {
		return InvalidArgumentError(v.ErrorMessage())
	}
	return nil
}

// EnsureDirs creates the filesystem areas if they do not exist yet.
func (d DirsConfig) EnsureDirs() error {
	for _, dir := range []string{d.UploadDir, d.ImagesDir, d.DocumentsDir, d.ProcessedDir, d.ErrorDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return WrapError(err, "create directory "+dir)
		}
	}
	return nil
}

// DirForKind maps a file kind to its destination area.
func (d DirsConfig) DirForKind(kind string) string {
	if kind == "document" {
		return d.DocumentsDir
	}
	return d.ImagesDir
}
