package server

import (
	"crypto/tls"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serisow/docintel/handlers"
	"github.com/serisow/docintel/objectstore"
	"golang.org/x/crypto/acme/autocert"

	"github.com/urfave/negroni"
)

func SetupRoutes(processor handlers.DocumentProcessor, objects objectstore.ObjectStore, db *pgxpool.Pool, maxUploadSize int64, logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", handlers.Root).Methods("GET")
	r.HandleFunc("/health", handlers.Health).Methods("GET")

	processHandler := handlers.NewProcessHandler(processor, objects, maxUploadSize, logger)
	r.Handle("/process", processHandler).Methods("POST")

	documentsHandler := handlers.NewDocumentsHandler(db, logger)
	r.Handle("/documents", documentsHandler).Methods("GET")

	return r
}

// ServeProduction runs the server behind autocert-managed TLS.
func ServeProduction(n *negroni.Negroni, domains []string, certCacheDir, httpsPort string) {
	autocertManager := autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(domains...),
		Cache:      autocert.DirCache(certCacheDir),
	}

	// Listen for HTTP requests on port 80 in a new goroutine. Use
	// autocertManager.HTTPHandler(nil) as the handler. This will send ACME
	// "http-01" challenge responses as necessary, and 302 redirect all other
	// requests to HTTPS.
	go func() {
		srv := &http.Server{
			Addr:         ":80",
			Handler:      autocertManager.HTTPHandler(nil),
			IdleTimeout:  time.Minute,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		}

		err := srv.ListenAndServe()
		log.Fatal(err)
	}()

	// Configure the TLS config to use the autocertManager.GetCertificate function.
	tlsConfig := &tls.Config{
		GetCertificate:           autocertManager.GetCertificate,
		PreferServerCipherSuites: true,
		CurvePreferences:         []tls.CurveID{tls.X25519, tls.CurveP256},
	}

	srv := &http.Server{
		Addr:         ":" + httpsPort,
		Handler:      n,
		TLSConfig:    tlsConfig,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	err := srv.ListenAndServeTLS("", "") // Key and cert provided automatically by autocert.
	log.Fatal(err)
}

// ServeDevelopment runs the plain HTTP server used outside production.
func ServeDevelopment(s *http.Server) {
	log.Fatal(s.ListenAndServe())
}
