package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/lookai-app/backend/internal/ai"
	"github.com/lookai-app/backend/internal/config"
	httpAPI "github.com/lookai-app/backend/internal/http"
	"github.com/lookai-app/backend/internal/http/controller"
	"github.com/lookai-app/backend/internal/logger"
	"github.com/lookai-app/backend/internal/metrics"
	"github.com/lookai-app/backend/internal/repository/sql"
	"github.com/lookai-app/backend/internal/service"
	sqspkg "github.com/lookai-app/backend/internal/sqs"
	"github.com/lookai-app/backend/internal/upload"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	ctx := context.Background()
	db, err := sql.StartDB(ctx, conf.Database)
	handleErr("starting database", err)

	// Create repositories
	productRepository := sql.NewProductRepository(db)
	healthRepository := sql.NewHealthRepository(db)

	// Event publishing is optional; the catalog works without a queue.
	var publisher service.Publisher
	if conf.AWS.SQSQueueURL != "" {
		sqsClient, err := sqspkg.NewClient(ctx, conf.AWS.Region, conf.AWS.Endpoint)
		handleErr("creating SQS client", err)
		publisher = sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL)
	}

	productService := service.NewProductService(productRepository, publisher)

	uploadStore, err := upload.NewStore(conf.Upload.Dir, upload.PublicPrefix)
	handleErr("creating upload store", err)

	aiClient := ai.NewClient(conf.AI.APIURL, conf.AI.Model, conf.AI.APIKey)

	// Start HTTP server
	ctr := controller.New(healthRepository)
	productCtr := controller.NewProductController(productService)
	uploadCtr := controller.NewUploadController(uploadStore)
	askCtr := controller.NewAskController(aiClient)

	httpServer := gin.Default()
	httpServer = httpAPI.InitRouter(httpServer, ctr, productCtr, uploadCtr, askCtr, uploadStore.Dir())

	go func() {
		err = httpServer.Run(":" + conf.HTTPServer.Port)
		if err != nil {
			handleErr("listening to HTTP requests", err)
		}
	}()

	// Start metrics server
	metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down gracefully...")
	// TODO: stop httpServer gracefully
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
