package config

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/pem"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/bhoomikart/backend/internal/utils"
)

type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string
	Env              string

	// Database
	DBUrl string

	// Media uploads (property images, profile pictures)
	MediaRoot string

	// External services
	TwilioAccountSID string
	TwilioAuthToken  string
	SendGridAPIKey   string

	// Auth
	RSAPrivateKey *rsa.PrivateKey
	RSAPublicKey  *rsa.PublicKey

	// LaunchDarkly flag snapshots (taken once at boot)
	LDFlag_TwilioFromPhone         string
	LDFlag_SendgridFromEmail       string
	LDFlag_SendgridSandboxMode     bool
	LDFlag_SampleLocationFallback  bool
	LDFlag_ExposeOTPInRegistration bool
	LDFlag_SeedDbWithTestData      bool
}

const (
	OrganizationName    = "BhoomiKart"
	AppName             = "bhoomikart-api"
	LDConnectionTimeout = 5 * time.Second
)

func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	env := os.Getenv("ENV")
	if env == "" {
		utils.Logger.Fatal("ENV env var is missing")
	}
	appUrl := os.Getenv("APP_URL_FROM_ANYWHERE")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL_FROM_ANYWHERE env var is missing")
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}
	mediaRoot := os.Getenv("MEDIA_ROOT")
	if mediaRoot == "" {
		mediaRoot = "./media"
	}

	privB64 := os.Getenv("RSA_PRIVATE_KEY_BASE64")
	if privB64 == "" {
		utils.Logger.Fatal("RSA_PRIVATE_KEY_BASE64 env var is missing")
	}
	privPEM, _ := base64.StdEncoding.DecodeString(privB64)
	if block, _ := pem.Decode(privPEM); block == nil {
		utils.Logger.Fatal("Failed to decode PEM block for private key")
	}
	privKey, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA private key")
	}

	pubB64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if pubB64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	pubPEM, _ := base64.StdEncoding.DecodeString(pubB64)
	if block, _ := pem.Decode(pubPEM); block == nil {
		utils.Logger.Fatal("Failed to decode PEM block for public key")
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	// Twilio / SendGrid
	twilioSID := os.Getenv("TWILIO_ACCOUNT_SID")
	if twilioSID == "" {
		utils.Logger.Fatal("TWILIO_ACCOUNT_SID env var is missing")
	}
	twilioToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if twilioToken == "" {
		utils.Logger.Fatal("TWILIO_AUTH_TOKEN env var is missing")
	}
	sgAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sgAPIKey == "" {
		utils.Logger.Fatal("SENDGRID_API_KEY env var is missing")
	}

	// LaunchDarkly client & flag snapshot
	ldSDKKey := os.Getenv("LD_SDK_KEY")
	if ldSDKKey == "" {
		utils.Logger.Fatal("LD_SDK_KEY env var is missing")
	}
	ldClient, err := ld.MakeClient(ldSDKKey, LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to create LaunchDarkly client")
	}
	if !ldClient.Initialized() {
		ldClient.Close()
		utils.Logger.Fatal("LaunchDarkly client failed to initialize")
	}
	defer ldClient.Close()

	ctx := ldcontext.NewWithKind("service", AppName+"-"+env)

	twilioFromPhone, err := ldClient.StringVariation("twilio_from_phone", ctx, "")
	if err != nil || twilioFromPhone == "" {
		ldClient.Close()
		utils.Logger.Fatal("twilio_from_phone flag error / empty")
	}
	utils.Logger.Debugf("twilio_from_phone flag: %s", twilioFromPhone)

	sendgridFromEmail, err := ldClient.StringVariation("sendgrid_from_email", ctx, "")
	if err != nil || sendgridFromEmail == "" {
		ldClient.Close()
		utils.Logger.Fatal("sendgrid_from_email flag error / empty")
	}
	utils.Logger.Debugf("sendgrid_from_email flag: %s", sendgridFromEmail)

	sendgridSandbox, err := ldClient.BoolVariation("sendgrid_sandbox_mode", ctx, false)
	if err != nil {
		ldClient.Close()
		utils.Logger.Fatal("sendgrid_sandbox_mode flag error")
	}

	sampleLocationFallback, err := ldClient.BoolVariation("sample_location_fallback", ctx, false)
	if err != nil {
		ldClient.Close()
		utils.Logger.Fatal("sample_location_fallback flag error")
	}
	utils.Logger.Debugf("sample_location_fallback flag: %t", sampleLocationFallback)

	exposeOTP, err := ldClient.BoolVariation("expose_otp_in_registration", ctx, false)
	if err != nil {
		ldClient.Close()
		utils.Logger.Fatal("expose_otp_in_registration flag error")
	}
	if exposeOTP {
		utils.Logger.Warn("expose_otp_in_registration is ON; registration responses will carry live OTP codes. Never enable in production.")
	}

	seedTestData, err := ldClient.BoolVariation("seed_db_with_test_data", ctx, false)
	if err != nil {
		ldClient.Close()
		utils.Logger.Fatal("seed_db_with_test_data flag error")
	}

	utils.Logger.Infof("Loaded config for %s (%s)", AppName, env)

	return &Config{
		OrganizationName: OrganizationName,
		AppName:          AppName,
		AppPort:          appPort,
		AppUrl:           appUrl,
		Env:              env,
		DBUrl:            dbURL,
		MediaRoot:        mediaRoot,
		TwilioAccountSID: twilioSID,
		TwilioAuthToken:  twilioToken,
		SendGridAPIKey:   sgAPIKey,
		RSAPrivateKey:    privKey,
		RSAPublicKey:     pubKey,

		LDFlag_TwilioFromPhone:         twilioFromPhone,
		LDFlag_SendgridFromEmail:       sendgridFromEmail,
		LDFlag_SendgridSandboxMode:     sendgridSandbox,
		LDFlag_SampleLocationFallback:  sampleLocationFallback,
		LDFlag_ExposeOTPInRegistration: exposeOTP,
		LDFlag_SeedDbWithTestData:      seedTestData,
	}
}
