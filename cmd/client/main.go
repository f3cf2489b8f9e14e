package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/stackfall/client/drivers"
	"github.com/cbodonnell/stackfall/client/game"
	"github.com/cbodonnell/stackfall/client/network"
	"github.com/cbodonnell/stackfall/client/scenes"
	"github.com/cbodonnell/stackfall/pkg/game/constants"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/queue"
	"github.com/cbodonnell/stackfall/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	serverHostname := flag.String("host", network.DefaultServerHostname, "Game server hostname")
	tcpPort := flag.Int("tcp-port", network.DefaultServerTCPPort, "Game server TCP port")
	wsURL := flag.String("ws-url", "", "Game server WebSocket URL, e.g. ws://localhost:8889/, overrides the TCP transport")
	authURL := flag.String("auth-url", game.DefaultAuthServerURL, "Account API URL")
	rows := flag.Int("rows", constants.DefaultRows, "Board rows for offline play")
	columns := flag.Int("columns", constants.DefaultColumns, "Board columns for offline play")
	garbageInterval := flag.Duration("garbage-interval", 0, "Interval between garbage rows for offline play, 0 disables garbage")
	debug := flag.Bool("debug", false, "Show the debug overlay")
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

	log.Info("Starting client version %s", version.Get())

	serverMessageQueue := queue.NewInMemoryQueue(1024)
	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{
		ServerHostname: *serverHostname,
		TCPPort:        *tcpPort,
		WSURL:          *wsURL,
		MessageQueue:   serverMessageQueue,
	})

	g, err := game.NewGame(game.NewGameOptions{
		Debug:          *debug,
		AuthURL:        *authURL,
		NetworkManager: networkManager,
		LocalOptions: drivers.NewLocalDriverOptions{
			Rows:            *rows,
			Columns:         *columns,
			StepInterval:    constants.DefaultStepInterval,
			GarbageInterval: *garbageInterval,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
	ebiten.SetWindowTitle("Stackfall")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
