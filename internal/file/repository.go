//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=file
package file

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

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	InsertFile(ctx context.Context, file *FileDocument) error
	FindFileWithId(ctx context.Context, fileId string) (*FileDocument, error)
	FindFiles(ctx context.Context, ownerId string) ([]FileDocument, error)
	DeleteFileWithId(ctx context.Context, fileId string) error
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
		Collection(r.mongodbConfig.Collections[config.MongodbFileCollection])
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("ownerId_createdAt"),
	})
	if err != nil {
		return cerror.Internal("error occurred while create file indexes", err)
	}

	return nil
}

func (r *repository) InsertFile(ctx context.Context, file *FileDocument) error {
	if _, err := r.collection().InsertOne(ctx, file); err != nil {
		return cerror.Internal("error occurred while insert file", err)
	}

	return nil
}

func (r *repository) FindFileWithId(ctx context.Context, fileId string) (*FileDocument, error) {
	var file FileDocument

	err := r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: fileId}}).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrorFileNotFound.With(zap.String("fileId", fileId))
		}

		return nil, cerror.Internal("error occurred while find file", err)
	}

	return &file, nil
}

func (r *repository) FindFiles(ctx context.Context, ownerId string) ([]FileDocument, error) {
	filter := bson.D{}
	if ownerId != "" {
		filter = bson.D{{Key: "ownerId", Value: ownerId}}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, cerror.Internal("error occurred while find files", err)
	}

	files := []FileDocument{}
	if err = cursor.All(ctx, &files); err != nil {
		return nil, cerror.Internal("error occurred while decode files", err)
	}

	return files, nil
}

func (r *repository) DeleteFileWithId(ctx context.Context, fileId string) error {
	result, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: fileId}})
	if err != nil {
		return cerror.Internal("error occurred while delete file", err)
	}

	if result.DeletedCount == 0 {
		return ErrorFileNotFound.With(zap.String("fileId", fileId))
	}

	return nil
}
