package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `validate:"required,numeric"`

	// PatternsFile overrides the embedded pattern library when set.
	PatternsFile string `validate:"omitempty,file"`

	MaxUploadMB   int           `validate:"gt=0,lte=100"`
	DecodeTimeout time.Duration `validate:"gt=0"`

	AllowedOrigins []string `validate:"min=1,dive,required"`
	SwaggerURL     string   `validate:"omitempty,url"`
}

// MaxUploadBytes is the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		log.Println("Attempting to load from parent directory...")
		err = godotenv.Load("../../.env")
		if err != nil {
			log.Println("Warning: Could not load .env file, using environment variables")
		}
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() *Config {
	port := getEnv("PORT", "8080")

	return &Config{
		Port:           port,
		PatternsFile:   os.Getenv("PATTERNS_FILE"),
		MaxUploadMB:    getInt("MAX_UPLOAD_MB", 10),
		DecodeTimeout:  getDuration("DECODE_TIMEOUT", 30*time.Second),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		SwaggerURL:     getEnv("SWAGGER_URL", "http://localhost:"+port+"/swagger/doc.json"),
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
