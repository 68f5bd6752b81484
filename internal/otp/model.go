package otp

import "time"

const (
	CodeLength = 6
	CodeTTL    = 10 * time.Minute
)

// OtpDocument stores only the hash of the code. ExpiresAt is a BSON date so
// the TTL index can purge it.
type OtpDocument struct {
	Id        string    `bson:"_id"`
	Email     string    `bson:"email"`
	CodeHash  string    `bson:"codeHash"`
	ExpiresAt time.Time `bson:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt"`
}
