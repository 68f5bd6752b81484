package config

import "time"

// #nosec
const (
	EnvironmentVariableNotDefined = "%s variable is not defined"
	EnvironmentVariableNotValid   = "%s variable is not valid"

	ServerPort  = "SERVER_PORT"
	IsAtRemote  = "IS_AT_REMOTE"
	Environment = "APP_ENV"

	MongodbUri                = "MONGODB_URI"
	MongodbUsername           = "MONGODB_USERNAME"
	MongodbPassword           = "MONGODB_PASSWORD"
	MongodbDatabase           = "MONGODB_DATABASE"
	MongodbUserCollection     = "MONGODB_USER_COLLECTION"
	MongodbStudentCollection  = "MONGODB_STUDENT_COLLECTION"
	MongodbEmployeeCollection = "MONGODB_EMPLOYEE_COLLECTION"
	MongodbAdminCollection    = "MONGODB_ADMIN_COLLECTION"
	MongodbOtpCollection      = "MONGODB_OTP_COLLECTION"
	MongodbEntryCollection    = "MONGODB_ENTRY_COLLECTION"
	MongodbFileCollection     = "MONGODB_FILE_COLLECTION"

	JwtAccessSecret  = "JWT_ACCESS_SECRET"
	JwtRefreshSecret = "JWT_REFRESH_SECRET"

	CorsAllowOrigins = "CORS_ALLOW_ORIGINS"

	SmtpAddr     = "SMTP_ADDR"
	SmtpFrom     = "SMTP_FROM"
	SmtpUser     = "SMTP_USER"
	SmtpPassword = "SMTP_PASSWORD"
	SmtpUseTls   = "SMTP_USE_TLS"

	BlobBucketUrl   = "BLOB_BUCKET_URL"
	FileMaxSizeMb   = "FILE_MAX_SIZE_MB"
	RateLimitMax    = "RATE_LIMIT_MAX"
	RateLimitWindow = "RATE_LIMIT_WINDOW"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"

	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var defaultCollections = map[string]string{
	MongodbUserCollection:     "users",
	MongodbStudentCollection:  "students",
	MongodbEmployeeCollection: "employees",
	MongodbAdminCollection:    "admins",
	MongodbOtpCollection:      "otps",
	MongodbEntryCollection:    "entries",
	MongodbFileCollection:     "files",
}

type MongodbConfig struct {
	Uri         string
	Username    string
	Password    string
	Database    string
	Collections map[string]string
}

type JwtConfig struct {
	AccessSecret    []byte
	RefreshSecret   []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type CookieConfig struct {
	Secure   bool
	SameSite string
	MaxAge   time.Duration
}

type CorsConfig struct {
	AllowOrigins string
}

type SmtpConfig struct {
	Addr     string
	From     string
	User     string
	Password string
	UseTls   bool
	Timeout  time.Duration
}

type BlobConfig struct {
	BucketUrl   string
	MaxFileSize int
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

// DefaultCollections returns a fresh copy of the default collection names.
func DefaultCollections() map[string]string {
	collections := make(map[string]string, len(defaultCollections))
	for key, name := range defaultCollections {
		collections[key] = name
	}
	return collections
}
