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
	"github.com/cbodonnell/stackfall/pkg/game"
	"github.com/cbodonnell/stackfall/pkg/game/constants"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/network"
	"github.com/cbodonnell/stackfall/pkg/queue"
	"github.com/cbodonnell/stackfall/pkg/repositories"
	"github.com/cbodonnell/stackfall/pkg/state"
	"github.com/cbodonnell/stackfall/pkg/version"
	"github.com/cbodonnell/stackfall/pkg/workers"
)

func main() {
	tcpPort := flag.Int("tcp-port", 8888, "TCP port to listen on")
	wsPort := flag.Int("ws-port", 8889, "WebSocket port to listen on")
	apiPort := flag.Int("api-port", 8080, "API port to listen on, 0 disables the API")
	allowOrigin := flag.String("allow-origin", "localhost", "comma-separated list of allowed origins")
	rows := flag.Int("rows", constants.DefaultRows, "Board rows")
	columns := flag.Int("columns", constants.DefaultColumns, "Board columns")
	stepInterval := flag.Duration("step-interval", constants.DefaultStepInterval, "Interval between automatic drops")
	garbageInterval := flag.Duration("garbage-interval", 0, "Interval between garbage rows, 0 disables garbage")
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

	if *rows < constants.MinBoardSize || *columns < constants.MinBoardSize {
		panic(fmt.Sprintf("Board must be at least %dx%d", constants.MinBoardSize, constants.MinBoardSize))
	}

	log.Info("Starting game server version %s", version.Get())
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var authProvider authproviders.AuthProvider
	var authHandler authhandlers.AuthHandler
	firebaseProjectID := os.Getenv("STACKFALL_FIREBASE_PROJECT_ID")
	firebaseAPIKey := os.Getenv("STACKFALL_FIREBASE_API_KEY")
	if firebaseProjectID != "" {
		authProvider, err = authproviders.NewFirebaseAuthProvider(ctx, firebaseProjectID, firebaseAPIKey)
		if err != nil {
			panic(fmt.Sprintf("Failed to create Firebase auth provider: %v", err))
		}
		authHandler = authhandlers.NewFirebaseAuthHandler(authhandlers.NewFirebaseAuthHandlerOptions{
			APIKey: firebaseAPIKey,
		})
	} else {
		log.Warn("STACKFALL_FIREBASE_PROJECT_ID is not set, accepting anonymous logins")
		authProvider = authproviders.NewAnonymousAuthProvider()
	}

	repository, err := repositories.OpenRepository(ctx, os.Getenv("STACKFALL_DATABASE_URL"), *migrations)
	if err != nil {
		panic(fmt.Sprintf("Failed to open repository: %v", err))
	}
	defer repository.Close(context.Background())

	clientManager := network.NewClientManager()
	clientMessageQueue := queue.NewInMemoryQueue(constants.CommandQueueSize)

	networkManagerOpts := network.NewNetworkManagerOptions{
		AuthProvider:  authProvider,
		ClientManager: clientManager,
		MessageQueue:  clientMessageQueue,
		TCPPort:       *tcpPort,
		WSPort:        *wsPort,
	}
	tlsCertFile := os.Getenv("STACKFALL_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("STACKFALL_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		networkManagerOpts.WSServerTLS = &network.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	networkManager := network.NewNetworkManager(networkManagerOpts)
	networkManager.Start(ctx)

	sessionEventQueue := queue.NewInMemoryQueue(constants.SessionEventQueueSize)
	connectionEventWorker := workers.NewConnectionEventWorker(workers.NewConnectionEventWorkerOptions{
		ConnectionEventChan: clientManager.GetConnectionEventChan(),
		SessionEventQueue:   sessionEventQueue,
	})
	go connectionEventWorker.Start(ctx)

	saveResultChannelSize := 100
	saveResultChan := make(chan workers.SaveResultRequest, saveResultChannelSize)
	saveResultWorker := workers.NewSaveResultWorker(workers.NewSaveResultWorkerOptions{
		Repository:     repository,
		SaveResultChan: saveResultChan,
	})
	go saveResultWorker.Start(ctx)

	serverMessageChannelSize := 100
	serverMessageChan := make(chan workers.ServerMessage, serverMessageChannelSize)
	serverMessageWorker := workers.NewServerMessageWorker(workers.NewServerMessageWorkerOptions{
		Sender:            networkManager,
		ServerMessageChan: serverMessageChan,
	})
	go serverMessageWorker.Start(ctx)

	stateManager := state.NewInMemoryStateManager()

	if *apiPort != 0 {
		apiServerOpts := api.NewAPIServerOptions{
			Port:         *apiPort,
			AllowOrigins: strings.Split(*allowOrigin, ","),
			AuthProvider: authProvider,
			Repository:   repository,
			StateManager: stateManager,
			AuthHandler:  authHandler,
		}
		if tlsCertFile != "" && tlsKeyFile != "" {
			apiServerOpts.TLS = &api.TLSConfig{
				CertFile: tlsCertFile,
				KeyFile:  tlsKeyFile,
			}
		}
		apiServer := api.NewAPIServer(apiServerOpts)
		go apiServer.Start()
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer stopCancel()
			if err := apiServer.Stop(stopCtx); err != nil {
				log.Error("Failed to stop api server: %v", err)
			}
		}()
	}

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		ClientMessageQueue: clientMessageQueue,
		SessionEventQueue:  sessionEventQueue,
		StateManager:       stateManager,
		SaveResultChan:     saveResultChan,
		ServerMessageChan:  serverMessageChan,
		GameLoopInterval:   constants.DefaultLoopInterval,
		StepInterval:       *stepInterval,
		GarbageInterval:    *garbageInterval,
		Rows:               *rows,
		Columns:            *columns,
	})

	log.Info("Starting game manager")
	if err := gameManager.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start game manager: %v", err))
	}
	log.Info("Game server stopped")
}
