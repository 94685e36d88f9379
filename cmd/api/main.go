package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/ideaforge/internal/application"
	appai "github.com/bryanwahyu/ideaforge/internal/application/ai"
	appideas "github.com/bryanwahyu/ideaforge/internal/application/ideas"
	"github.com/bryanwahyu/ideaforge/internal/config"
	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
	"github.com/bryanwahyu/ideaforge/internal/infra/ai/openai"
	"github.com/bryanwahyu/ideaforge/internal/infra/ai/prompt"
	mysqlp "github.com/bryanwahyu/ideaforge/internal/infra/db/mysql"
	postgresp "github.com/bryanwahyu/ideaforge/internal/infra/db/postgres"
	"github.com/bryanwahyu/ideaforge/internal/infra/httpserver"
	"github.com/bryanwahyu/ideaforge/internal/infra/images"
	filestore "github.com/bryanwahyu/ideaforge/internal/infra/store/file"
	"github.com/bryanwahyu/ideaforge/internal/middleware"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config (plus .env untuk API key)
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if cfg.APIKey() == "" {
		log.Warn("OPENAI_API_KEY is not set; analyze/transcribe/generate-image will fail")
	}

	ctx := context.Background()
	checkers := map[string]middleware.HealthChecker{}

	// pilih repository sesuai driver
	var repo domain.Repository
	switch cfg.Storage.Driver {
	case "file":
		repo = filestore.New(cfg.Storage.File.Path)
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		repo = mysqlp.NewIdeaRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		repo = postgresp.NewIdeaRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	default:
		log.Fatalf("unknown storage driver: %s", cfg.Storage.Driver)
	}
	checkers["store"] = &middleware.RepositoryHealthChecker{Repo: repo}

	// pilih image store sesuai driver
	var imgStore domain.ImageStore
	switch cfg.Images.Driver {
	case "disk":
		imgStore = images.NewDiskStore(cfg.Images.Dir)
	case "minio":
		m := cfg.Images.Minio
		store, err := images.NewMinioStore(ctx, m.Endpoint, m.Region, m.BucketName, m.AccessKey, m.SecretKey, m.UseSSL)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		imgStore = store
	default:
		log.Fatalf("unknown images driver: %s", cfg.Images.Driver)
	}

	// init AI client
	client := openai.NewClient(cfg.APIKey(), cfg.AI.Model, cfg.AI.ImageModel, cfg.AI.TranscribeModel)

	// init services
	aiSvc := &appai.Service{
		Analyzer:    client,
		Generator:   client,
		Transcriber: client,
		Images:      imgStore,
	}
	ideasSvc := &appideas.Service{
		Repo:    repo,
		Images:  imgStore,
		AI:      aiSvc,
		Prompts: prompt.ImagePrompts,
		Clock:   application.SystemClock{},
		Log:     log,
	}

	// init router
	handler := httpserver.NewRouter(ideasSvc, aiSvc, log, checkers)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // image generation calls are slow
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Infof("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Errorf("shutdown error: %v", err)
	}
}
