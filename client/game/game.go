package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/stackfall/client/drivers"
	"github.com/cbodonnell/stackfall/client/network"
	"github.com/cbodonnell/stackfall/client/scenes"
	"github.com/cbodonnell/stackfall/client/ui"
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// authClient exchanges credentials for ID tokens.
	authClient *AuthClient
	// networkManager is the network manager.
	networkManager *network.NetworkManager
	// localOptions configures offline sessions.
	localOptions drivers.NewLocalDriverOptions
	// driver runs the session shown by the game scene.
	driver drivers.Driver
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
}

const (
	DefaultAuthServerURL = "http://localhost:8080/auth"
)

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModeAuth
	GameModePlay
	GameModeOver
	GameModeNetworkError
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModeAuth:
		return "Auth"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	case GameModeNetworkError:
		return "Network Error"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug          bool
	AuthURL        string
	NetworkManager *network.NetworkManager
	// LocalOptions configures offline sessions.
	LocalOptions drivers.NewLocalDriverOptions
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	if opts.NetworkManager == nil {
		return nil, fmt.Errorf("missing network manager")
	}
	if opts.AuthURL == "" {
		opts.AuthURL = DefaultAuthServerURL
	}

	g := &Game{
		debug:          opts.Debug,
		authClient:     NewAuthClient(opts.AuthURL, nil),
		networkManager: opts.NetworkManager,
		localOptions:   opts.LocalOptions,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	g.stopDriver()
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnPlayOffline: g.playOffline,
		OnPlayGuest: func() error {
			return g.startOnline("")
		},
		OnSignIn: g.loadAuth,
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

func (g *Game) loadAuth() error {
	auth, err := scenes.NewAuthScene(scenes.AuthSceneOptions{
		OnLogin:    g.login,
		OnRegister: g.register,
		OnBack:     g.loadMenu,
	})
	if err != nil {
		return fmt.Errorf("failed to create auth scene: %v", err)
	}
	if err := g.SetScene(auth); err != nil {
		return fmt.Errorf("failed to set auth scene: %v", err)
	}
	g.mode = GameModeAuth
	return nil
}

func (g *Game) playOffline() error {
	g.stopDriver()
	g.driver = drivers.NewLocalDriver(g.localOptions, time.Now())
	return g.loadGame()
}

func (g *Game) login(email, password string) error {
	idToken, err := g.authClient.Login(email, password)
	if err != nil {
		return err
	}
	return g.startOnline(idToken)
}

func (g *Game) register(email, password string) error {
	idToken, err := g.authClient.Register(email, password)
	if err != nil {
		return err
	}
	return g.startOnline(idToken)
}

// startOnline logs in to the game server. A rejected login is returned to
// the calling scene; any other failure shows the network error scene.
func (g *Game) startOnline(idToken string) error {
	g.stopDriver()
	if err := g.networkManager.Start(idToken); err != nil {
		var loginErr *network.ErrLoginFailed
		if errors.As(err, &loginErr) {
			return ui.NewActionableError(loginErr.Reason)
		}
		log.Error("Failed to start network manager: %v", err)
		return g.loadNetworkError()
	}
	g.driver = drivers.NewRemoteDriver(g.networkManager)
	return g.loadGame()
}

func (g *Game) stopDriver() {
	if g.driver == nil {
		return
	}
	g.driver.Stop()
	g.driver = nil
}

func (g *Game) loadGame() error {
	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Driver:     g.driver,
		OnGameOver: g.loadGameOver,
		OnQuit:     g.loadMenu,
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.mode = GameModePlay
	return nil
}

func (g *Game) loadGameOver(stats types.Stats) error {
	gameOver, err := scenes.NewGameOverScene(scenes.GameOverSceneOptions{
		Stats:       stats,
		OnPlayAgain: g.playAgain,
		OnMenu:      g.loadMenu,
	})
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.mode = GameModeOver
	return nil
}

// playAgain starts a new session on the current driver, keeping an online
// connection open.
func (g *Game) playAgain() error {
	if g.driver == nil {
		return g.loadMenu()
	}
	if err := g.driver.NewGame(); err != nil {
		log.Error("Failed to start new game: %v", err)
		return g.loadNetworkError()
	}
	return g.loadGame()
}

func (g *Game) loadNetworkError() error {
	g.stopDriver()
	networkError, err := scenes.NewErrorScene("Network Error")
	if err != nil {
		return fmt.Errorf("failed to create network error scene: %v", err)
	}
	if err := g.SetScene(networkError); err != nil {
		return fmt.Errorf("failed to set network error scene: %v", err)
	}
	g.mode = GameModeNetworkError
	return nil
}

func (g *Game) Update() error {
	if err := g.checkNetworkManagerErrors(); err != nil {
		log.Error("Network manager error: %v", err)
		if err := g.loadNetworkError(); err != nil {
			return fmt.Errorf("failed to load network error scene: %v", err)
		}
		return nil
	}

	if g.mode == GameModeNetworkError {
		if err := g.handleErrorInput(); err != nil {
			return err
		}
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

// checkNetworkManagerErrors checks the network manager for errors and returns any that are found.
func (g *Game) checkNetworkManagerErrors() error {
	if _, online := g.driver.(*drivers.RemoteDriver); !online {
		return nil
	}
	select {
	case err := <-g.networkManager.ClientErrChan():
		return fmt.Errorf("client error: %v", err)
	default:
		return nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	if !g.networkManager.IsConnected() {
		return
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Client: %d", g.networkManager.ClientID()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Ping: %0.1f", g.networkManager.Ping()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return scenes.ScreenWidth, scenes.ScreenHeight
}
