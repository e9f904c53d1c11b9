package main

import (
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serisow/docintel/alerts"
	"github.com/serisow/docintel/classifier"
	"github.com/serisow/docintel/config"
	"github.com/serisow/docintel/db"
	"github.com/serisow/docintel/logging"
	"github.com/serisow/docintel/objectstore"
	"github.com/serisow/docintel/ocr"
	"github.com/serisow/docintel/pipeline"
	"github.com/serisow/docintel/server"
	"github.com/serisow/docintel/storage"

	"github.com/urfave/negroni"
)

func main() {
	cfg := config.Load()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	model, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		log.Fatalf("Failed to load classifier model: %v", err)
	}
	logger.Info("Classifier model loaded", slog.String("path", cfg.ModelPath))

	// The database is optional: without it, results still land in the
	// fallback log and the caller still gets a full response.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Warn("Database unavailable, running with fallback log only",
				slog.String("error", err.Error()))
			pool = nil
		}
	} else {
		logger.Warn("No DATABASE_URL configured, running with fallback log only")
	}

	sinks := []storage.Sink{}
	if pool != nil {
		sinks = append(sinks, storage.NewPostgresSink(pool), storage.NewPostgresCompatSink(pool))
	}
	sinks = append(sinks, storage.NewFallbackLogSink(cfg.FallbackLogPath))
	store := storage.NewStore(sinks, logger)

	recognizers := []ocr.TextRecognizer{
		ocr.NewTesseractRecognizer(),
		ocr.NewDocconvRecognizer(),
	}
	renderer := ocr.NewPageRenderer(cfg.PopplerPath, logger)
	selector := ocr.NewSelector(recognizers, renderer, logger)

	var notifier pipeline.Notifier
	if cfg.TwilioAccountSID != "" && cfg.TwilioAlertNumber != "" {
		notifier = alerts.NewSMSNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken,
			cfg.TwilioFromNumber, cfg.TwilioAlertNumber, logger)
	}

	var objects objectstore.ObjectStore
	if cfg.StorageURL != "" && cfg.StorageKey != "" {
		objects = objectstore.NewSupabaseStore(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket, logger)
	}

	proc := pipeline.New(selector, model, store, notifier, logger)

	r := server.SetupRoutes(proc, objects, pool, cfg.UploadMaxSize, logger)
	n := setupNegroni(r)

	if cfg.Environment == "production" {
		server.ServeProduction(n, cfg.Domains, cfg.CertCacheDir, cfg.HTTPSPort)
	} else {
		srv := &http.Server{
			Addr:         ":" + cfg.HTTPPort,
			Handler:      n,
			IdleTimeout:  time.Minute,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
		}
		logger.Info("Starting development server", slog.String("port", cfg.HTTPPort))
		server.ServeDevelopment(srv)
	}
}

func setupNegroni(r *mux.Router) *negroni.Negroni {
	n := negroni.New()

	n.Use(negroni.NewRecovery())
	n.Use(negroni.NewLogger())

	n.UseHandler(r)
	return n
}

func initLogger() (*slog.Logger, error) {
	logDir := filepath.Join("logs", "docintel")

	fileHandler, err := logging.NewDailyFileHandler(logDir, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	if err != nil {
		return nil, err
	}

	return slog.New(fileHandler), nil
}
