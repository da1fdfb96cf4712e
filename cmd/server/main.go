package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/cardfolio/api/internal/http/health"
	"github.com/cardfolio/api/internal/http/v1/routes"
	"github.com/cardfolio/api/internal/platform/auth"
	"github.com/cardfolio/api/internal/platform/config"
	fbplatform "github.com/cardfolio/api/internal/platform/firebase"
	applog "github.com/cardfolio/api/internal/platform/logging"
	appmiddleware "github.com/cardfolio/api/internal/platform/middleware"
	"github.com/cardfolio/api/internal/platform/respond"
	cardsvc "github.com/cardfolio/api/internal/service/card"
	mediasvc "github.com/cardfolio/api/internal/service/media"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()
	ctx := context.Background()

	var (
		cardService  cardsvc.Service
		mediaService mediasvc.Service
		verifier     auth.Verifier
		authOpts     auth.Options
		mode         string
	)

	if cfg.LocalMode() {
		// No Firebase project configured: file-backed cards, anonymous
		// identities, images kept inline. Intended for development and
		// offline demos only.
		mode = "local"
		cardService = cardsvc.NewLocalStore(cfg.LocalDataPath)
		mediaService = mediasvc.NewInlineStore()
		verifier = &auth.MockVerifier{Identity: &auth.Identity{Anonymous: true}}
		authOpts = auth.Options{AllowAnonymous: true}
		applog.LogInfo(ctx, "running in local mode",
			zap.String("dataPath", cfg.LocalDataPath))
	} else {
		mode = "firebase"
		clients, err := fbplatform.InitializeClients(ctx, fbplatform.Config{
			ProjectID:                    cfg.FirebaseProjectID,
			StorageBucket:                cfg.StorageBucket,
			GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
		})
		if err != nil {
			applog.LogFatal(ctx, "firebase init failed", err)
		}
		defer func() {
			if err := clients.Close(); err != nil {
				applog.LogError(ctx, "firebase close error", err)
			}
		}()

		cardService = cardsvc.NewFirestoreStore(clients.Firestore)
		verifier = auth.NewFirebaseVerifier(clients.Auth)
		switch {
		case cfg.CloudinaryCloudName != "":
			mediaService = mediasvc.NewCloudinaryClient(
				&http.Client{Timeout: 30 * time.Second},
				cfg.CloudinaryCloudName,
				cfg.CloudinaryUploadPreset,
			)
		case clients.Bucket != nil:
			mediaService = mediasvc.NewStorageStore(clients.Bucket, cfg.StorageBucket)
		default:
			mediaService = mediasvc.NewInlineStore()
		}
	}

	respond.Install()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORSOrigins...),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		chimiddleware.RealIP,
		// Image uploads arrive base64-encoded in JSON, so the body cap must
		// clear MaxImageBytes plus encoding overhead.
		chimiddleware.RequestSize(8<<20), // 8 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/healthz", health.Handler(mode))

	apiCfg := huma.DefaultConfig("Cardfolio API", Version)
	apiCfg.DocsPath = "/api-docs"
	api := humachi.New(router, apiCfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	routes.Register(api, verifier, authOpts, cardService, mediaService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr), zap.String("mode", mode))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}
