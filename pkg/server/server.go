package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"taskly-api/pkg/cerror"
	"taskly-api/pkg/config"
)

const (
	bodyLimitSlack  = 1024 * 1024
	shutdownTimeout = 10 * time.Second
)

// Handler is implemented by every feature package that exposes routes.
type Handler interface {
	RegisterRoutes(app *fiber.App)
}

type Server interface {
	GetFiberInstance() *fiber.App
	Use(middlewares ...fiber.Handler)
	Start() error
	Shutdown() error
	RegisterRoutes()
	LambdaProxyHandler(
		ctx context.Context,
		req events.APIGatewayProxyRequest,
	) (events.APIGatewayProxyResponse, error)
}

type server struct {
	serverPort         string
	handlers           []Handler
	fiber              *fiber.App
	fiberLambdaAdapter *fiberadapter.FiberLambda
}

func NewServer(cfg *config.Config, handlers []Handler) Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          cerror.Middleware,
		// multipart framing needs some room above the file size cap
		BodyLimit: cfg.Blob.MaxFileSize + bodyLimitSlack,
	})

	return &server{
		fiber:              app,
		handlers:           handlers,
		serverPort:         cfg.ServerPort,
		fiberLambdaAdapter: fiberadapter.New(app),
	}
}

func (server *server) Use(middlewares ...fiber.Handler) {
	for _, middleware := range middlewares {
		server.fiber.Use(middleware)
	}
}

func (server *server) Start() error {
	shutdownChannel := make(chan os.Signal, 1)
	signal.Notify(shutdownChannel, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChannel
		_ = server.Shutdown()
	}()

	serverAddress := fmt.Sprintf(":%s", server.serverPort)
	return server.fiber.Listen(serverAddress)
}

// Shutdown lets in-flight requests finish, bounded by shutdownTimeout.
func (server *server) Shutdown() error {
	return server.fiber.ShutdownWithTimeout(shutdownTimeout)
}

func (server *server) GetFiberInstance() *fiber.App {
	return server.fiber
}

func (server *server) RegisterRoutes() {
	for _, handler := range server.handlers {
		handler.RegisterRoutes(server.fiber)
	}
}

func (server *server) LambdaProxyHandler(
	ctx context.Context,
	req events.APIGatewayProxyRequest,
) (events.APIGatewayProxyResponse, error) {
	return server.fiberLambdaAdapter.ProxyWithContext(ctx, req)
}
