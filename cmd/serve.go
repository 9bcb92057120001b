package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	weaviateClient "github.com/weaviate/weaviate-go-client/v4/weaviate"

	v1 "claimsight/handler/http/v1"
	"claimsight/src/core/claimdocs"
	"claimsight/src/core/decisionflow"
	"claimsight/src/core/nlsql"
	"claimsight/src/core/reports"
	"claimsight/src/core/support"
	"claimsight/src/fsutil"
	"claimsight/src/infrastructure/integrations/ollama"
	"claimsight/src/infrastructure/job"
	"claimsight/src/jobctrl"
	"claimsight/src/log"
	"claimsight/src/storage/localvec"
	"claimsight/src/storage/minioctrl"
	"claimsight/src/storage/sqlite/claimsdb"
	"claimsight/src/storage/sqlite/clausectrl"
	"claimsight/src/storage/sqlite/documentctrl"
	"claimsight/src/storage/sqlite/querylogctrl"
	"claimsight/src/storage/valkey"
	"claimsight/src/storage/weaviate"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the claims assistant HTTP server",
	Long:  `The serve command starts an HTTP server exposing the claims query, document and decision APIs`,
	Run:   RunServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	settingDefaultConfig()
}

func RunServer(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	// Initialize SQLite connection
	db, err := claimsdb.Open(viper.GetString("sqlite.path"))
	if err != nil {
		log.Error(err, "Failed to open database")
		return
	}

	if err := claimsdb.Migrate(db); err != nil {
		log.Error(err, "Failed to migrate claims schema")
		return
	}
	if err := db.AutoMigrate(&documentctrl.PolicyDocument{}, &clausectrl.Clause{}, &querylogctrl.QueryLog{}); err != nil {
		log.Error(err, "Failed to migrate document schema")
		return
	}

	// Initialize MinIO
	minioService, err := minioctrl.NewMinioService(
		viper.GetString("minio.endpoint"),
		viper.GetString("minio.access_key"),
		viper.GetString("minio.secret_key"),
		viper.GetBool("minio.use_ssl"),
	)
	if err != nil {
		log.Error(err, "Failed to create minio service")
		return
	}
	for _, bucket := range []string{minioctrl.PolicyDocumentsBucket, minioctrl.PolicyClausesBucket, minioctrl.ReportExportsBucket} {
		if err := minioService.EnsureBucketExists(ctx, bucket); err != nil {
			log.Error(err, "Failed to ensure bucket exists", "bucket", bucket)
			return
		}
	}

	// Initialize Ollama client and provider
	ollamaClient := ollama.NewClient(viper.GetString("ollama.url"), &http.Client{
		Timeout: 120 * time.Second,
	})
	provider := ollama.NewProvider(ollamaClient, viper.GetString("ollama.model"))

	// Initialize the clause index backend
	clauseIndex := buildClauseIndex()
	if err := clauseIndex.EnsureReady(ctx); err != nil {
		log.Error(err, "Failed to prepare clause index")
		return
	}

	// Initialize job queue (publisher side)
	amqpLogger := watermill.NewStdLogger(false, false)
	amqpPublisher, err := amqp.NewPublisher(
		amqp.NewDurableQueueConfig(viper.GetString("amqp.url")),
		amqpLogger,
	)
	if err != nil {
		log.Error(err, "Failed to create amqp publisher")
		return
	}
	defer amqpPublisher.Close()

	jobRepo := job.NewSQLiteJobRepository(db)
	if err := jobRepo.Migrate(); err != nil {
		log.Error(err, "Failed to migrate jobs schema")
		return
	}
	jobService := job.NewJobService(amqpPublisher, jobRepo, amqpLogger)

	// Initialize storage services
	documentCtrl, err := documentctrl.NewDocumentService(db)
	if err != nil {
		log.Error(err, "Failed to create document service")
		return
	}
	clauseCtrl, err := clausectrl.NewClauseService(db)
	if err != nil {
		log.Error(err, "Failed to create clause service")
		return
	}
	queryLogCtrl, err := querylogctrl.NewQueryLogService(db)
	if err != nil {
		log.Error(err, "Failed to create query log service")
		return
	}

	// Initialize Valkey chat history
	chatStore, err := valkey.NewChatStore(viper.GetString("valkey.address"))
	if err != nil {
		log.Error(err, "Failed to create valkey chat store")
		return
	}
	defer chatStore.Close()

	// Initialize core services
	store := claimsdb.NewStore(db)
	enqueuer := jobctrl.NewIngestionEnqueuer(jobService)
	documentService := claimdocs.NewDocumentService(minioService, documentCtrl, clauseCtrl, clauseIndex, enqueuer)
	searchService := claimdocs.NewSearchService(clauseIndex, provider)
	systemService := claimdocs.NewSystemService(store, clauseIndex, minioService, ollamaClient)

	queryService := nlsql.NewService(provider, store, queryLogCtrl)
	decisionService := decisionflow.NewDecisionFlow(provider, searchService)
	supportService := support.NewService(provider, chatStore, viper.GetString("ollama.model"))
	reportService := reports.NewService(store, minioService)

	// Initialize HTTP handler with individual services
	handler := v1.NewHandler(
		queryService,
		documentService,
		searchService,
		decisionService,
		supportService,
		reportService,
		systemService,
		jobService,
	)

	// Setup gin router
	r := gin.Default()

	// Register routes
	handler.RegisterRoutes(r)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + viper.GetString("server.port"),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, "Failed to start server")
			return
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Parse shutdown timeout
	timeout, err := time.ParseDuration(viper.GetString("server.shutdown_timeout"))
	if err != nil {
		log.Error(err, "Invalid shutdown timeout, using default 5s")
		timeout = 5 * time.Second
	}

	// Create context with timeout for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "Server forced to shutdown")
	}

	// Close database connection once in-flight requests have drained
	sqlDB, err := db.DB()
	if err != nil {
		log.Error(err, "Failed to get underlying *sql.DB")
	} else {
		if err := sqlDB.Close(); err != nil {
			log.Error(err, "Error closing database connection")
		}
	}

	log.Info("Server exited")
}

// buildClauseIndex picks the vector backend from configuration. Weaviate is
// used when configured, otherwise the on-disk index.
func buildClauseIndex() claimdocs.ClauseIndex {
	if viper.GetString("vector.backend") == "weaviate" {
		wc := weaviateClient.New(weaviateClient.Config{
			Host:   viper.GetString("weaviate.host"),
			Scheme: "http",
		})
		return weaviate.NewClauseIndex(weaviate.NewSDK(wc))
	}

	return localvec.New(fsutil.NewLocalFileStore(), viper.GetString("vector.local_dir"))
}
