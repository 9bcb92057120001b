package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"claimsight/src/core/claimdocs"
	"claimsight/src/infrastructure/integrations/ollama"
	"claimsight/src/infrastructure/integrations/unstructured"
	"claimsight/src/infrastructure/job"
	"claimsight/src/jobctrl"
	"claimsight/src/log"
	"claimsight/src/storage/minioctrl"
	"claimsight/src/storage/sqlite/claimsdb"
	"claimsight/src/storage/sqlite/clausectrl"
	"claimsight/src/storage/sqlite/documentctrl"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start the background document ingestion worker",
	RunE:  runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
	settingDefaultConfig()
}

func runWorker(cmd *cobra.Command, args []string) error {
	// Initialize logger
	logger := watermill.NewStdLogger(false, false)

	// Initialize SQLite connection
	db, err := claimsdb.Open(viper.GetString("sqlite.path"))
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}

	// Get underlying *sql.DB for cleanup
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying *sql.DB: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&documentctrl.PolicyDocument{}, &clausectrl.Clause{}); err != nil {
		return fmt.Errorf("failed to migrate document schema: %v", err)
	}

	// Initialize AMQP publisher
	amqpPublisher, err := amqp.NewPublisher(
		amqp.NewDurableQueueConfig(viper.GetString("amqp.url")),
		logger,
	)
	if err != nil {
		return err
	}
	defer amqpPublisher.Close()

	// Initialize AMQP subscriber
	subscriberConfig := amqp.NewDurableQueueConfig(viper.GetString("amqp.url"))
	subscriberConfig.Consume.NoRequeueOnNack = true
	amqpSubscriber, err := amqp.NewSubscriber(subscriberConfig, logger)
	if err != nil {
		return err
	}
	defer amqpSubscriber.Close()

	// Initialize router
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return err
	}

	// Add middleware
	router.AddMiddleware(
		middleware.Recoverer,
		middleware.CorrelationID,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: time.Second,
			Logger:          logger,
		}.Middleware,
	)

	// Initialize MinioService
	minioService, err := minioctrl.NewMinioService(
		viper.GetString("minio.endpoint"),
		viper.GetString("minio.access_key"),
		viper.GetString("minio.secret_key"),
		viper.GetBool("minio.use_ssl"),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize minio service: %v", err)
	}

	// Initialize Ollama client and provider
	ollamaClient := ollama.NewClient(viper.GetString("ollama.url"), &http.Client{
		Timeout: 120 * time.Second,
	})
	provider := ollama.NewProvider(ollamaClient, viper.GetString("ollama.model"))

	// Initialize Unstructured text extractor
	extractor := unstructured.NewUnstructuredService(viper.GetString("unstructured.url"), &http.Client{
		Timeout: 5 * time.Minute,
	})

	// Initialize the clause index backend
	clauseIndex := buildClauseIndex()
	if err := clauseIndex.EnsureReady(context.Background()); err != nil {
		return fmt.Errorf("failed to prepare clause index: %v", err)
	}

	// Initialize storage services
	documentCtrl, err := documentctrl.NewDocumentService(db)
	if err != nil {
		return fmt.Errorf("failed to initialize document service: %v", err)
	}
	clauseCtrl, err := clausectrl.NewClauseService(db)
	if err != nil {
		return fmt.Errorf("failed to initialize clause service: %v", err)
	}

	// Initialize IngestionTask
	ingestService := claimdocs.NewIngestService(
		minioService,
		documentCtrl,
		clauseCtrl,
		clauseIndex,
		extractor,
		provider,
		provider,
	)
	ingestionTask := jobctrl.NewIngestionTask(ingestService)

	// Initialize job repository and service
	jobRepo := job.NewSQLiteJobRepository(db)
	if err := jobRepo.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate jobs schema: %v", err)
	}
	jobService := job.NewJobService(amqpPublisher, jobRepo, logger, ingestionTask)

	// Add handler for processing jobs
	router.AddNoPublisherHandler(
		"job_processor",
		job.JobsTopic,
		amqpSubscriber,
		func(msg *message.Message) error {
			return jobService.ProcessJobMessage(msg)
		},
	)

	// Run the router
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := router.Run(ctx); err != nil {
			log.Error(err, "Job router stopped")
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	<-c

	log.Info("Shutting down worker...")
	cancel()
	<-router.Running()
	log.Info("Router stopped")

	return nil
}
