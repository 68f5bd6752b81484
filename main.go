package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"taskly-api/internal/auth"
	"taskly-api/internal/entry"
	"taskly-api/internal/file"
	"taskly-api/internal/otp"
	"taskly-api/internal/user"
	"taskly-api/pkg/authorization"
	"taskly-api/pkg/config"
	"taskly-api/pkg/jwt_generator"
	"taskly-api/pkg/logger"
	"taskly-api/pkg/mailer"
	"taskly-api/pkg/metrics"
	"taskly-api/pkg/server"
	"taskly-api/pkg/throttle"
)

const startupTimeout = 30 * time.Second

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func main() {
	isAtRemote := os.Getenv(config.IsAtRemote)
	if isAtRemote == "" {
		if err := godotenv.Load(); err != nil {
			panic(err)
		}
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer func(l *zap.SugaredLogger) {
		_ = l.Sync()
	}(log)

	if !cfg.IsProduction() {
		cfg.Print()
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	jwtGenerator, err := jwt_generator.NewJwtGenerator(cfg.Jwt)
	if err != nil {
		log.Fatalw(
			"failed to create jwt generator",
			zap.Error(err),
		)
	}

	mongoDbClient, err := setupMongodbClient(ctx, cfg)
	if err != nil {
		log.Fatalw(
			"failed to setup mongodb client",
			zap.Error(err),
		)
	}

	defer func(client *mongo.Client) {
		err := client.Disconnect(context.Background())
		if err != nil {
			log.Errorw(
				"failed to disconnect mongodb client",
				zap.Error(err),
			)
		}
	}(mongoDbClient)

	bucket, err := file.OpenBucket(ctx, cfg.Blob.BucketUrl)
	if err != nil {
		log.Fatalw(
			"failed to open blob bucket",
			zap.String("bucketUrl", cfg.Blob.BucketUrl),
			zap.Error(err),
		)
	}
	defer bucket.Close() //nolint:errcheck

	userRepository := user.NewRepository(mongoDbClient, cfg.Mongodb)
	otpRepository := otp.NewRepository(mongoDbClient, cfg.Mongodb)
	entryRepository := entry.NewRepository(mongoDbClient, cfg.Mongodb)
	fileRepository := file.NewRepository(mongoDbClient, cfg.Mongodb)

	for _, repository := range []indexer{userRepository, otpRepository, entryRepository, fileRepository} {
		if err = repository.EnsureIndexes(ctx); err != nil {
			log.Fatalw(
				"failed to ensure mongodb indexes",
				zap.Error(err),
			)
		}
	}

	authorizationMiddleware := authorization.NewMiddleware(jwtGenerator)
	authService := auth.NewService(
		userRepository,
		otpRepository,
		jwtGenerator,
		mailer.New(cfg.Smtp, cfg.IsProduction(), log.Desugar()),
	)
	userService := user.NewService(userRepository)
	entryService := entry.NewService(entryRepository)
	fileService := file.NewService(fileRepository, file.NewStorage(bucket), cfg.Blob.MaxFileSize)

	handlers := []server.Handler{
		auth.NewHandler(authService, authorizationMiddleware, cfg.Cookie, throttle.New(cfg.RateLimit)),
		user.NewHandler(userService, authorizationMiddleware),
		entry.NewHandler(entryService, authorizationMiddleware),
		file.NewHandler(fileService, authorizationMiddleware),
	}
	srv := server.NewServer(cfg, handlers)

	requestMetrics := metrics.New(prometheus.NewRegistry())
	srv.Use(
		cors.New(cors.Config{
			AllowOrigins:     cfg.Cors.AllowOrigins,
			AllowCredentials: true,
		}),
		logger.Middleware(log),
		requestMetrics.Middleware,
	)

	app := srv.GetFiberInstance()
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString("OK")
	})
	app.Get("/metrics", requestMetrics.Handler())

	srv.RegisterRoutes()

	if isAtRemote == "" {
		log.Infow("server is starting", zap.String("port", cfg.ServerPort))
		err = srv.Start()
		if err != nil {
			log.Fatalw(
				"server stopped with error",
				zap.Error(err),
			)
		}
	} else {
		lambda.Start(srv.LambdaProxyHandler)
	}
}

func setupMongodbClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	mongodbServerAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(cfg.Mongodb.Uri).
		SetServerAPIOptions(mongodbServerAPIOptions)

	if cfg.Mongodb.Username != "" {
		clientOptions.SetAuth(options.Credential{
			Username: cfg.Mongodb.Username,
			Password: cfg.Mongodb.Password,
		})
	}

	mongodbClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err = mongodbClient.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return mongodbClient, nil
}
