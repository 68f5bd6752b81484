//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=entry
package entry

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

var ErrorEntryNotFound = &cerror.CustomError{
	Kind:        cerror.KindNotFound,
	Message:     "entry not found",
	LogMessage:  "entry not found",
	LogSeverity: zap.WarnLevel,
}

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	InsertEntry(ctx context.Context, entry *EntryDocument) error
	FindEntryWithId(ctx context.Context, entryId string) (*EntryDocument, error)
	FindEntries(ctx context.Context, ownerId string) ([]EntryDocument, error)
	ReplaceEntry(ctx context.Context, entry *EntryDocument) error
	DeleteEntryWithId(ctx context.Context, entryId string) error
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
		Collection(r.mongodbConfig.Collections[config.MongodbEntryCollection])
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("ownerId_createdAt"),
	})
	if err != nil {
		return cerror.Internal("error occurred while create entry indexes", err)
	}

	return nil
}

func (r *repository) InsertEntry(ctx context.Context, entry *EntryDocument) error {
	if _, err := r.collection().InsertOne(ctx, entry); err != nil {
		return cerror.Internal("error occurred while insert entry", err)
	}

	return nil
}

func (r *repository) FindEntryWithId(ctx context.Context, entryId string) (*EntryDocument, error) {
	var entry EntryDocument

	err := r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: entryId}}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrorEntryNotFound.With(zap.String("entryId", entryId))
		}

		return nil, cerror.Internal("error occurred while find entry", err)
	}

	return &entry, nil
}

// FindEntries lists newest first. An empty ownerId lists every entry.
func (r *repository) FindEntries(ctx context.Context, ownerId string) ([]EntryDocument, error) {
	filter := bson.D{}
	if ownerId != "" {
		filter = bson.D{{Key: "ownerId", Value: ownerId}}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, cerror.Internal("error occurred while find entries", err)
	}

	entries := []EntryDocument{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, cerror.Internal("error occurred while decode entries", err)
	}

	return entries, nil
}

func (r *repository) ReplaceEntry(ctx context.Context, entry *EntryDocument) error {
	result, err := r.collection().ReplaceOne(ctx, bson.D{{Key: "_id", Value: entry.Id}}, entry)
	if err != nil {
		return cerror.Internal("error occurred while replace entry", err)
	}

	if result.MatchedCount == 0 {
		return ErrorEntryNotFound.With(zap.String("entryId", entry.Id))
	}

	return nil
}

func (r *repository) DeleteEntryWithId(ctx context.Context, entryId string) error {
	result, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: entryId}})
	if err != nil {
		return cerror.Internal("error occurred while delete entry", err)
	}

	if result.DeletedCount == 0 {
		return ErrorEntryNotFound.With(zap.String("entryId", entryId))
	}

	return nil
}
