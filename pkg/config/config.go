package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kr/pretty"
)

const maskedValue = "******"

type Config struct {
	ServerPort  string
	Environment string
	Mongodb     MongodbConfig
	Jwt         JwtConfig
	Cookie      CookieConfig
	Cors        CorsConfig
	Smtp        SmtpConfig
	Blob        BlobConfig
	RateLimit   RateLimitConfig
}

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = "8080"
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	environment := os.Getenv(Environment)
	if environment == "" {
		environment = EnvironmentDevelopment
	}

	mongodbConfig, err := ReadMongoDbConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	blobConfig, err := ReadBlobConfig()
	if err != nil {
		return nil, err
	}

	rateLimitConfig, err := ReadRateLimitConfig()
	if err != nil {
		return nil, err
	}

	corsAllowOrigins := os.Getenv(CorsAllowOrigins)
	if corsAllowOrigins == "" {
		corsAllowOrigins = "http://localhost:3000"
	}

	return &Config{
		ServerPort:  serverPort,
		Environment: environment,
		Mongodb:     mongodbConfig,
		Jwt:         jwtConfig,
		Cookie:      ReadCookieConfig(environment),
		Cors: CorsConfig{
			AllowOrigins: corsAllowOrigins,
		},
		Smtp:      ReadSmtpConfig(),
		Blob:      blobConfig,
		RateLimit: rateLimitConfig,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// Print dumps the configuration with credentials masked.
func (c *Config) Print() {
	printable := *c
	printable.Mongodb.Password = mask(printable.Mongodb.Password)
	printable.Smtp.Password = mask(printable.Smtp.Password)
	printable.Jwt.AccessSecret = []byte(maskedValue)
	printable.Jwt.RefreshSecret = []byte(maskedValue)
	_, _ = pretty.Println(printable)
}

func ReadMongoDbConfig() (MongodbConfig, error) {
	mongodbUri := os.Getenv(MongodbUri)
	if mongodbUri == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUri)
	}

	mongodbDatabase := os.Getenv(MongodbDatabase)
	if mongodbDatabase == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbDatabase)
	}

	collections := make(map[string]string, len(defaultCollections))
	for key, defaultName := range defaultCollections {
		collections[key] = getEnvOrDefault(key, defaultName)
	}

	return MongodbConfig{
		Uri:         mongodbUri,
		Username:    os.Getenv(MongodbUsername),
		Password:    os.Getenv(MongodbPassword),
		Database:    mongodbDatabase,
		Collections: collections,
	}, nil
}

func ReadJwtConfig() (JwtConfig, error) {
	accessSecret := os.Getenv(JwtAccessSecret)
	if accessSecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtAccessSecret)
	}

	refreshSecret := os.Getenv(JwtRefreshSecret)
	if refreshSecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtRefreshSecret)
	}

	return JwtConfig{
		AccessSecret:    []byte(accessSecret),
		RefreshSecret:   []byte(refreshSecret),
		AccessTokenTTL:  AccessTokenTTL,
		RefreshTokenTTL: RefreshTokenTTL,
	}, nil
}

// ReadCookieConfig derives refresh cookie flags from the deployment mode. Cross-site
// production deployments need SameSite=None which browsers only accept with Secure.
func ReadCookieConfig(environment string) CookieConfig {
	if environment == EnvironmentProduction {
		return CookieConfig{
			Secure:   true,
			SameSite: "None",
			MaxAge:   RefreshTokenTTL,
		}
	}

	return CookieConfig{
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   RefreshTokenTTL,
	}
}

func ReadSmtpConfig() SmtpConfig {
	useTls, _ := strconv.ParseBool(os.Getenv(SmtpUseTls))

	return SmtpConfig{
		Addr:     os.Getenv(SmtpAddr),
		From:     getEnvOrDefault(SmtpFrom, "no-reply@taskly.local"),
		User:     os.Getenv(SmtpUser),
		Password: os.Getenv(SmtpPassword),
		UseTls:   useTls,
		Timeout:  10 * time.Second,
	}
}

func ReadBlobConfig() (BlobConfig, error) {
	maxFileSize := 10
	rawMaxFileSize := os.Getenv(FileMaxSizeMb)
	if rawMaxFileSize != "" {
		parsed, err := strconv.Atoi(rawMaxFileSize)
		if err != nil || parsed <= 0 {
			return BlobConfig{}, fmt.Errorf(EnvironmentVariableNotValid, FileMaxSizeMb)
		}
		maxFileSize = parsed
	}

	return BlobConfig{
		BucketUrl:   getEnvOrDefault(BlobBucketUrl, "file:///tmp/taskly-files?create_dir=true"),
		MaxFileSize: maxFileSize * 1024 * 1024,
	}, nil
}

func ReadRateLimitConfig() (RateLimitConfig, error) {
	rateLimitConfig := RateLimitConfig{
		Max:    10,
		Window: time.Minute,
	}

	rawMax := os.Getenv(RateLimitMax)
	if rawMax != "" {
		parsed, err := strconv.Atoi(rawMax)
		if err != nil || parsed <= 0 {
			return RateLimitConfig{}, fmt.Errorf(EnvironmentVariableNotValid, RateLimitMax)
		}
		rateLimitConfig.Max = parsed
	}

	rawWindow := os.Getenv(RateLimitWindow)
	if rawWindow != "" {
		parsed, err := time.ParseDuration(rawWindow)
		if err != nil || parsed <= 0 {
			return RateLimitConfig{}, fmt.Errorf(EnvironmentVariableNotValid, RateLimitWindow)
		}
		rateLimitConfig.Window = parsed
	}

	return rateLimitConfig, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func mask(value string) string {
	if value == "" {
		return ""
	}
	return maskedValue
}
