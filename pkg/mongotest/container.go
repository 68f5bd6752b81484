//go:build unit

// Package mongotest starts throwaway MongoDB containers for repository tests.
package mongotest

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskly-api/pkg/config"
)

const (
	UserName = "root"
	Password = "12345"
	Database = "taskly"
)

// Setup starts a container and returns a connected client plus a config that
// uses the default collection names. Both are released on test cleanup.
func Setup(t *testing.T, ctx context.Context) (*mongo.Client, config.MongodbConfig) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image: "mongo:6",
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": UserName,
			"MONGO_INITDB_ROOT_PASSWORD": Password,
		},
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Waiting for connections"),
			wait.ForListeningPort("27017/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	uri, err := container.Endpoint(ctx, "mongodb")
	if err != nil {
		t.Fatalf("failed to get endpoint: %s", err)
	}

	mongodbConfig := config.MongodbConfig{
		Uri:         uri,
		Username:    UserName,
		Password:    Password,
		Database:    Database,
		Collections: config.DefaultCollections(),
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(mongodbConfig.Uri).
		SetAuth(options.Credential{
			Username: mongodbConfig.Username,
			Password: mongodbConfig.Password,
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = client.Disconnect(ctx)
	})

	return client, mongodbConfig
}
