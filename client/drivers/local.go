package drivers

import (
	"time"

	"github.com/cbodonnell/stackfall/pkg/game"
	"github.com/cbodonnell/stackfall/pkg/game/constants"
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/tetris"
)

// LocalDriver runs a session in process.
type LocalDriver struct {
	rows            int
	columns         int
	stepInterval    time.Duration
	garbageInterval time.Duration
	newSource       func() tetris.Source

	session *game.Session
	now     time.Time
	state   *types.BoardState
	notices []Notice
}

var _ Driver = &LocalDriver{}

type NewLocalDriverOptions struct {
	Rows    int
	Columns int
	// StepInterval defaults to constants.DefaultStepInterval.
	StepInterval time.Duration
	// GarbageInterval enables rising garbage rows when set.
	GarbageInterval time.Duration
	// NewSource picks the families of each new game. Defaults to a random source.
	NewSource func() tetris.Source
}

// NewLocalDriver creates a driver and starts its first session at now.
func NewLocalDriver(opts NewLocalDriverOptions, now time.Time) *LocalDriver {
	if opts.StepInterval == 0 {
		opts.StepInterval = constants.DefaultStepInterval
	}
	if opts.NewSource == nil {
		opts.NewSource = func() tetris.Source {
			return tetris.NewRandomSource()
		}
	}
	d := &LocalDriver{
		rows:            opts.Rows,
		columns:         opts.Columns,
		stepInterval:    opts.StepInterval,
		garbageInterval: opts.GarbageInterval,
		newSource:       opts.NewSource,
		now:             now,
	}
	d.start()
	return d
}

func (d *LocalDriver) start() {
	controller := game.NewController(game.NewControllerOptions{
		Rows:    d.rows,
		Columns: d.columns,
		Source:  d.newSource(),
	})
	d.session = game.NewSession(0, "local", controller, d.now)
	controller.Start()
	d.collect()
	log.Debug("Started local session %s", d.session.ID)
}

// collect turns controller events into notices and refreshes the snapshot.
func (d *LocalDriver) collect() {
	for _, e := range d.session.Controller().DrainEvents() {
		switch e.Type {
		case game.EventNewPiece:
			d.notices = append(d.notices, Notice{Type: NoticeNewPiece})
		case game.EventRowsCleared:
			d.notices = append(d.notices, Notice{Type: NoticeRowsCleared, Count: e.RowsCleared})
		case game.EventGameOver:
			d.notices = append(d.notices, Notice{Type: NoticeGameOver, Stats: d.session.Controller().Stats()})
		}
	}
	d.state = d.session.Snapshot(d.now)
}

func (d *LocalDriver) Update(now time.Time) error {
	d.now = now
	d.session.Advance(now, d.stepInterval, d.garbageInterval)
	d.collect()
	return nil
}

func (d *LocalDriver) Apply(cmd types.Command) error {
	if d.session.Apply(cmd, d.now) {
		d.collect()
	}
	return nil
}

func (d *LocalDriver) NewGame() error {
	d.session.Controller().Stop()
	d.start()
	return nil
}

func (d *LocalDriver) State() *types.BoardState {
	return d.state
}

func (d *LocalDriver) Notices() []Notice {
	notices := d.notices
	d.notices = nil
	return notices
}

func (d *LocalDriver) Stop() {
	d.session.Controller().Stop()
}

func (d *LocalDriver) Status() []string {
	return []string{"Offline"}
}
