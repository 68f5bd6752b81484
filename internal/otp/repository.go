//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=otp
package otp

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"taskly-api/pkg/cerror"
	"taskly-api/pkg/config"
)

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	InsertOtp(ctx context.Context, otp *OtpDocument) error
	DeleteOtpsWithEmail(ctx context.Context, email string) error
	FindValidOtp(ctx context.Context, email string, now time.Time) (*OtpDocument, error)
}

type repository struct {
	mongoClient   *mongo.Client
	mongodbConfig config.MongodbConfig
}

func NewRepository(mongoClient *mongo.Client, mongodbConfig config.MongodbConfig) Repository {
	return &repository{
		mongoClient:   mongoClient,
		mongodbConfig: mongodbConfig,
	}
}

func (r *repository) collection() *mongo.Collection {
	return r.mongoClient.
		Database(r.mongodbConfig.Database).
		Collection(r.mongodbConfig.Collections[config.MongodbOtpCollection])
}

// EnsureIndexes adds the email lookup index and a TTL index that lets the
// server drop codes once expiresAt has passed.
func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email"),
		},
		{
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetName("expiresAt_ttl").SetExpireAfterSeconds(0),
		},
	})
	if err != nil {
		return cerror.Internal("error occurred while create otp indexes", err)
	}

	return nil
}

func (r *repository) InsertOtp(ctx context.Context, otp *OtpDocument) error {
	_, err := r.collection().InsertOne(ctx, otp)
	if err != nil {
		return cerror.Internal("error occurred while insert otp", err)
	}

	return nil
}

func (r *repository) DeleteOtpsWithEmail(ctx context.Context, email string) error {
	_, err := r.collection().DeleteMany(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return cerror.Internal("error occurred while delete otps", err)
	}

	return nil
}

// FindValidOtp returns the newest code of email that is still valid at now.
// The TTL monitor runs about once a minute, so expiry is checked here too.
func (r *repository) FindValidOtp(ctx context.Context, email string, now time.Time) (*OtpDocument, error) {
	filter := bson.D{
		{Key: "email", Value: email},
		{Key: "expiresAt", Value: bson.D{{Key: "$gt", Value: now}}},
	}
	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var otp OtpDocument
	err := r.collection().FindOne(ctx, filter, findOptions).Decode(&otp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.ErrorInvalidOrExpiredOTP.With(zap.String("email", email))
		}

		return nil, cerror.Internal("error occurred while find otp", err)
	}

	return &otp, nil
}
