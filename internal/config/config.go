package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

const (
	AppName          = "realestate-api"
	OrganizationName = "UrbanNest Properties"
)

type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string

	// Database
	DBUrl string

	// Email
	SendgridAPIKey            string
	SendgridFromEmail         string
	AdminEmail                string
	ValidateEmailWithSendgrid bool

	// File storage
	GCSBucket          string
	GCSCredentialsFile string

	// Phone validation (optional)
	TwilioAccountSID        string
	TwilioAuthToken         string
	ValidatePhoneWithTwilio bool

	// Auth: this service only validates tokens minted elsewhere.
	RSAPublicKey *rsa.PublicKey
}

// LoadConfig reads the environment (optionally seeded from a local .env)
// and fails fast on anything required.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found; using process environment")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	cfg := &Config{
		OrganizationName: OrganizationName,
		AppName:          AppName,
		AppPort:          requireEnv("APP_PORT"),
		AppUrl:           requireEnv("APP_URL"),

		DBUrl: requireEnv("DATABASE_URL"),

		SendgridAPIKey:            requireEnv("SENDGRID_API_KEY"),
		SendgridFromEmail:         requireEnv("SENDGRID_FROM_EMAIL"),
		AdminEmail:                requireEnv("ADMIN_EMAIL"),
		ValidateEmailWithSendgrid: os.Getenv("VALIDATE_EMAIL_WITH_SENDGRID") == "true",

		GCSBucket:          requireEnv("GCS_BUCKET"),
		GCSCredentialsFile: os.Getenv("GCS_CREDENTIALS_FILE"),

		TwilioAccountSID:        os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:         os.Getenv("TWILIO_AUTH_TOKEN"),
		ValidatePhoneWithTwilio: os.Getenv("VALIDATE_PHONE_WITH_TWILIO") == "true",
	}

	pubB64 := requireEnv("RSA_PUBLIC_KEY_BASE64")
	pubPEM, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("RSA_PUBLIC_KEY_BASE64 is not valid base64")
	}
	pub, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key PEM")
	}
	cfg.RSAPublicKey = pub

	utils.Logger.Infof("Loaded config for %s", AppName)
	return cfg
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("%s env var is missing", key)
	}
	return v
}
