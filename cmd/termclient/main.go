package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cbodonnell/stackfall/client/drivers"
	"github.com/cbodonnell/stackfall/pkg/game/constants"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/version"
	"github.com/nsf/termbox-go"
)

// messageTTL is how long a rows cleared message stays on screen.
const messageTTL = time.Second

func main() {
	rows := flag.Int("rows", constants.DefaultRows, "Board rows")
	columns := flag.Int("columns", constants.DefaultColumns, "Board columns")
	stepInterval := flag.Duration("step-interval", constants.DefaultStepInterval, "Interval between automatic drops")
	garbageInterval := flag.Duration("garbage-interval", 0, "Interval between garbage rows, 0 disables garbage")
	logFile := flag.String("log-file", "", "File to write logs to, logs are discarded when empty")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	// the terminal belongs to termbox, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Sprintf("Failed to open log file: %v", err))
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)

	if *rows < constants.MinBoardSize || *columns < constants.MinBoardSize {
		panic(fmt.Sprintf("Board must be at least %dx%d", constants.MinBoardSize, constants.MinBoardSize))
	}

	log.Info("Starting terminal client version %s", version.Get())

	if err := termbox.Init(); err != nil {
		panic(fmt.Sprintf("Failed to initialize terminal: %v", err))
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	driver := drivers.NewLocalDriver(drivers.NewLocalDriverOptions{
		Rows:            *rows,
		Columns:         *columns,
		StepInterval:    *stepInterval,
		GarbageInterval: *garbageInterval,
	}, time.Now())
	defer driver.Stop()

	if err := run(driver); err != nil {
		termbox.Close()
		panic(fmt.Sprintf("Terminal client failed: %v", err))
	}
}

// run polls terminal events on a goroutine and advances the driver every
// loop tick until the player quits.
func run(driver drivers.Driver) error {
	events := make(chan termbox.Event, 16)
	go func() {
		for {
			ev := termbox.PollEvent()
			events <- ev
			if ev.Type == termbox.EventInterrupt {
				return
			}
		}
	}()

	ticker := time.NewTicker(constants.DefaultLoopInterval)
	defer ticker.Stop()

	s := &screen{}
	var messageAt time.Time
	for {
		select {
		case ev := <-events:
			switch ev.Type {
			case termbox.EventError:
				return fmt.Errorf("failed to poll terminal event: %v", ev.Err)
			case termbox.EventKey:
				act, cmd := keyAction(ev)
				switch act {
				case actionQuit:
					termbox.Interrupt()
					return nil
				case actionNewGame:
					s.message = ""
					if err := driver.NewGame(); err != nil {
						return fmt.Errorf("failed to start new game: %v", err)
					}
				case actionCommand:
					if err := driver.Apply(togglePause(cmd, driver.State())); err != nil {
						log.Debug("Failed to apply %s: %v", cmd, err)
					}
				}
			}
		case now := <-ticker.C:
			if err := driver.Update(now); err != nil {
				return fmt.Errorf("failed to update driver: %v", err)
			}
			for _, notice := range driver.Notices() {
				s.notice(notice)
				if notice.Type == drivers.NoticeRowsCleared {
					messageAt = now
				}
			}
			if s.message != "" && !messageAt.IsZero() && now.Sub(messageAt) > messageTTL {
				s.message = ""
				messageAt = time.Time{}
			}
		}
		if err := s.draw(driver.State()); err != nil {
			return err
		}
	}
}
