//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=user
package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"taskly-api/pkg/cerror"
	"taskly-api/pkg/config"
)

var ErrorProfileNotFound = &cerror.CustomError{
	Kind:        cerror.KindNotFound,
	Message:     "profile not found",
	LogMessage:  "profile not found",
	LogSeverity: zap.WarnLevel,
}

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	InsertUser(ctx context.Context, user *UserDocument) error
	FindUserWithId(ctx context.Context, userId string) (*UserDocument, error)
	FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error)
	FindUsers(ctx context.Context, role string) ([]UserDocument, error)
	DeleteUserWithId(ctx context.Context, userId string) error
	UpdatePasswordWithEmail(ctx context.Context, email, hashedPassword string) error
	InsertProfile(ctx context.Context, role string, profile *Profile) error
	FindProfile(ctx context.Context, role, userId string) (*Profile, error)
	UpdateProfile(ctx context.Context, role, userId string, fields map[string]string) (*Profile, error)
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

var profileCollections = map[string]string{
	RoleStudent:  config.MongodbStudentCollection,
	RoleEmployee: config.MongodbEmployeeCollection,
	RoleAdmin:    config.MongodbAdminCollection,
}

func (r *repository) collection(key string) *mongo.Collection {
	return r.mongoClient.
		Database(r.mongodbConfig.Database).
		Collection(r.mongodbConfig.Collections[key])
}

func (r *repository) profileCollection(role string) (*mongo.Collection, error) {
	key, ok := profileCollections[role]
	if !ok {
		return nil, cerror.NewError(
			cerror.KindInternal,
			"role has no profile collection",
			zap.String("role", role),
		)
	}

	return r.collection(key), nil
}

// EnsureIndexes creates the unique email index that backs duplicate detection.
func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection(config.MongodbUserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return cerror.Internal("error occurred while create user indexes", err)
	}

	return nil
}

func (r *repository) InsertUser(ctx context.Context, user *UserDocument) error {
	_, err := r.collection(config.MongodbUserCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return cerror.ErrorDuplicateEmail.With(zap.String("email", user.Email))
		}

		return cerror.Internal("error occurred while insert user", err)
	}

	return nil
}

func (r *repository) FindUserWithId(ctx context.Context, userId string) (*UserDocument, error) {
	var user UserDocument

	filter := bson.D{{Key: "_id", Value: userId}}
	err := r.collection(config.MongodbUserCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.ErrorUserNotFound.With(zap.String("userId", userId))
		}

		return nil, cerror.Internal("error occurred while find user with id", err)
	}

	return &user, nil
}

func (r *repository) FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error) {
	var user UserDocument

	filter := bson.D{{Key: "email", Value: email}}
	err := r.collection(config.MongodbUserCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.ErrorUserNotFound
		}

		return nil, cerror.Internal("error occurred while find user with email", err)
	}

	return &user, nil
}

// FindUsers lists users oldest first. An empty role matches every user.
func (r *repository) FindUsers(ctx context.Context, role string) ([]UserDocument, error) {
	filter := bson.D{}
	if role != "" {
		filter = bson.D{{Key: "role", Value: role}}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection(config.MongodbUserCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, cerror.Internal("error occurred while find users", err)
	}

	users := []UserDocument{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, cerror.Internal("error occurred while decode users", err)
	}

	return users, nil
}

func (r *repository) DeleteUserWithId(ctx context.Context, userId string) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	_, err := r.collection(config.MongodbUserCollection).DeleteOne(ctx, filter)
	if err != nil {
		return cerror.Internal("error occurred while delete user", err)
	}

	return nil
}

func (r *repository) UpdatePasswordWithEmail(ctx context.Context, email, hashedPassword string) error {
	filter := bson.D{{Key: "email", Value: email}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "password", Value: hashedPassword}}}}

	result, err := r.collection(config.MongodbUserCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return cerror.Internal("error occurred while update password", err)
	}

	if result.MatchedCount == 0 {
		return cerror.ErrorUserNotFound
	}

	return nil
}

func (r *repository) InsertProfile(ctx context.Context, role string, profile *Profile) error {
	collection, err := r.profileCollection(role)
	if err != nil {
		return err
	}

	_, err = collection.InsertOne(ctx, profile)
	if err != nil {
		return cerror.Internal("error occurred while insert profile", err)
	}

	return nil
}

func (r *repository) FindProfile(ctx context.Context, role, userId string) (*Profile, error) {
	collection, err := r.profileCollection(role)
	if err != nil {
		return nil, err
	}

	var profile Profile
	filter := bson.D{{Key: "_id", Value: userId}}
	err = collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrorProfileNotFound.With(zap.String("userId", userId), zap.String("role", role))
		}

		return nil, cerror.Internal("error occurred while find profile", err)
	}

	return &profile, nil
}

func (r *repository) UpdateProfile(
	ctx context.Context,
	role, userId string,
	fields map[string]string,
) (*Profile, error) {
	if len(fields) == 0 {
		return r.FindProfile(ctx, role, userId)
	}

	collection, err := r.profileCollection(role)
	if err != nil {
		return nil, err
	}

	set := bson.D{}
	for key, value := range fields {
		set = append(set, bson.E{Key: key, Value: value})
	}

	var profile Profile
	filter := bson.D{{Key: "_id", Value: userId}}
	update := bson.D{{Key: "$set", Value: set}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrorProfileNotFound.With(zap.String("userId", userId), zap.String("role", role))
		}

		return nil, cerror.Internal("error occurred while update profile", err)
	}

	return &profile, nil
}
