package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cbodonnell/stackfall/pkg/api"
	authhandlers "github.com/cbodonnell/stackfall/pkg/auth/handlers"
	authproviders "github.com/cbodonnell/stackfall/pkg/auth/providers"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/repositories"
	"github.com/cbodonnell/stackfall/pkg/version"
)

func main() {
	port := flag.Int("port", 9090, "port to listen on")
	allowOrigin := flag.String("allow-origin", "localhost", "comma-separated list of allowed origins")
	migrations := flag.String("migrations", "./migrations", "Directory of database migrations")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting api server version %s", version.Get())
	ctx := context.Background()

	firebaseProjectID := os.Getenv("STACKFALL_FIREBASE_PROJECT_ID")
	if firebaseProjectID == "" {
		panic("STACKFALL_FIREBASE_PROJECT_ID environment variable must be set")
	}
	firebaseAPIKey := os.Getenv("STACKFALL_FIREBASE_API_KEY")
	if firebaseAPIKey == "" {
		panic("STACKFALL_FIREBASE_API_KEY environment variable must be set")
	}
	authProvider, err := authproviders.NewFirebaseAuthProvider(ctx, firebaseProjectID, firebaseAPIKey)
	if err != nil {
		panic(fmt.Sprintf("Failed to create Firebase auth provider: %v", err))
	}

	repository, err := repositories.OpenRepository(ctx, os.Getenv("STACKFALL_DATABASE_URL"), *migrations)
	if err != nil {
		panic(fmt.Sprintf("Failed to open repository: %v", err))
	}
	defer repository.Close(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Port:         *port,
		AllowOrigins: strings.Split(*allowOrigin, ","),
		AuthProvider: authProvider,
		Repository:   repository,
		AuthHandler: authhandlers.NewFirebaseAuthHandler(authhandlers.NewFirebaseAuthHandlerOptions{
			APIKey: firebaseAPIKey,
		}),
	}
	tlsCertFile := os.Getenv("STACKFALL_API_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("STACKFALL_API_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Stop(stopCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
