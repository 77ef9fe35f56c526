package tetris

import (
	"math"
	"time"

	"github.com/rs/zerolog"
)

// EngineStats exposes internal counters for inspectors and benchmarks.
type EngineStats struct {
	State        State
	Level        int
	LevelPoints  int
	Lines        int
	Score        float64
	PiecesLocked int
	SoftDrop     bool
	PendingRows  []int
	Interval     time.Duration
	Blocks       int
}

// Engine runs one game at a time. It is not safe for concurrent use: every call,
// including the scheduler's, must happen on one goroutine. Hosts with other event
// sources hand work over with Scheduler().Post.
type Engine struct {
	cfg       Config
	policy    Policy
	log       zerolog.Logger
	board     *Board
	ctrl      *Controller
	input     *InputMapper
	scheduler *Scheduler

	state        State
	softDrop     bool
	levelPoints  int
	level        int
	lines        int
	score        float64
	piecesLocked int
	pendingRows  []int
	finished     bool
}

// NewEngine creates an engine and installs its tick on a fresh scheduler.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()

	board := NewBoard()
	e := &Engine{
		cfg:       cfg,
		policy:    cfg.Policy,
		log:       cfg.Logger.With().Str("component", "engine").Logger(),
		board:     board,
		ctrl:      NewController(board, cfg.Random, cfg.Sound, cfg.RandomRotation),
		input:     NewInputMapper(cfg.Controls),
		scheduler: NewScheduler(),
	}
	e.start()
	return e
}

func (e *Engine) start() {
	e.scheduler.SetTick(e.Tick)
	e.updateInterval()
}

// Scheduler returns the scheduler that drives the engine.
func (e *Engine) Scheduler() *Scheduler { return e.scheduler }

// Board returns the settled grid. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Controller returns the falling-piece controller.
func (e *Engine) Controller() *Controller { return e.ctrl }

// Policy returns the active scoring policy.
func (e *Engine) Policy() Policy { return e.policy }

// State returns the current phase.
func (e *Engine) State() State { return e.state }

// Reset discards the current game and starts a new one on an empty board.
func (e *Engine) Reset() {
	e.scheduler.Stop()
	e.scheduler.ClearDeferred()
	e.board.Reset()
	e.ctrl.Reset()
	e.input.Reset()

	e.state = StateFalling
	e.softDrop = false
	e.levelPoints = 0
	e.level = 0
	e.lines = 0
	e.score = 0
	e.piecesLocked = 0
	e.pendingRows = nil
	e.finished = false

	e.start()
}

// SetControls rebinds the keyboard.
func (e *Engine) SetControls(controls KeyboardControls) {
	e.input.SetControls(controls)
	e.setSoftDrop(false)
}

// KeyDown feeds a key press. It reports whether the key was consumed, which is
// the case for every bound key while the game is running.
func (e *Engine) KeyDown(code string) bool {
	if e.state == StateGameOver {
		return false
	}
	action, ok := e.input.Press(code)
	if !ok {
		return false
	}
	e.Apply(action)
	return true
}

// KeyUp feeds a key release. It reports whether the release ended a soft-drop.
func (e *Engine) KeyUp(code string) bool {
	action, ok := e.input.Release(code)
	if !ok || e.state == StateGameOver {
		return false
	}
	e.Apply(action)
	return true
}

// Apply performs a logical action immediately, independent of the tick.
func (e *Engine) Apply(action Action) bool {
	if e.state == StateGameOver {
		return false
	}

	switch action {
	case ActionMoveLeft:
		return e.ctrl.MoveLeft()
	case ActionMoveRight:
		return e.ctrl.MoveRight()
	case ActionRotate:
		return e.ctrl.Rotate()
	case ActionSoftDropOn:
		e.setSoftDrop(true)
		return true
	case ActionSoftDropOff:
		e.setSoftDrop(false)
		return true
	}
	return false
}

func (e *Engine) setSoftDrop(held bool) {
	e.input.Hold(held)
	if e.softDrop == held {
		return
	}
	e.softDrop = held
	e.updateInterval()
}

func (e *Engine) updateInterval() {
	e.scheduler.SetInterval(e.policy.Interval(e.level, e.softDrop))
}

// Tick advances the game by one step: spawn when no piece is falling, otherwise
// move the piece down or lock it and look for full rows.
func (e *Engine) Tick() {
	if e.state == StateGameOver {
		return
	}

	if _, ok := e.ctrl.Active(); !ok {
		if len(e.pendingRows) > 0 {
			return
		}
		if _, ok := e.ctrl.Spawn(); !ok {
			e.gameOver()
		}
		return
	}

	if e.ctrl.MoveDown() {
		if e.softDrop {
			e.addScore(e.policy.SoftDropScore)
		}
		return
	}

	e.lock()
}

func (e *Engine) lock() {
	e.board.Freeze(e.ctrl.Lock())
	e.piecesLocked++
	if e.softDrop {
		e.cfg.Sound.Play(CueHit)
	}
	e.addLevelPoints(1)

	rows := e.board.DetectFullRows()
	if len(rows) == 0 {
		return
	}

	e.board.MarkRemoved(rows)
	e.pendingRows = sortedRows(append(e.pendingRows, rows...))
	e.state = StateClearing
	e.log.Debug().Ints("rows", rows).Msg("rows marked")
	e.scheduler.After(e.cfg.ClearDelay, func() {
		e.collapse(rows)
	})
}

func (e *Engine) collapse(rows []int) {
	if e.state == StateGameOver {
		return
	}

	n := len(rows)
	e.lines += n
	e.addScore(e.policy.LineScore(n))
	e.board.Collapse(rows)
	e.pendingRows = e.pendingRows[:0]
	e.state = StateFalling
	e.cfg.Sound.Play(CueLineClear)
	e.addLevelPoints(n)

	e.log.Debug().Int("rows", n).Int("lines", e.lines).Msg("rows cleared")
}

func (e *Engine) addScore(increment int) {
	e.score += e.policy.Scale(increment, e.level)
}

func (e *Engine) addLevelPoints(points int) {
	e.levelPoints += points
	level := e.policy.Level(e.levelPoints)
	if level == e.level {
		return
	}

	raised := level > e.level
	e.level = level
	e.updateInterval()
	if raised {
		e.cfg.Sound.Play(CueLevelUp)
		e.log.Debug().Int("level", level+1).Msg("level up")
	}
}

func (e *Engine) gameOver() {
	e.state = StateGameOver
	e.softDrop = false
	e.scheduler.Stop()

	if e.finished {
		return
	}
	e.finished = true

	result := e.Result()
	e.log.Info().
		Int("level", result.Level).
		Int("lines", result.Lines).
		Int("score", result.Score).
		Msg("game over")

	if e.cfg.OnGameOver != nil {
		e.cfg.OnGameOver(result)
	}
}

// Result returns the current tally with a one-based level.
func (e *Engine) Result() MatchResult {
	return MatchResult{
		Level: e.level + 1,
		Lines: e.lines,
		Score: int(math.Floor(e.score)),
	}
}

// Snapshot copies the render state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Level:    e.level + 1,
		Lines:    e.lines,
		Score:    int(math.Floor(e.score)),
		State:    e.state,
		SoftDrop: e.softDrop,
	}

	for _, block := range e.board.Blocks() {
		b := *block
		snap.Grid[b.Position.Row][b.Position.Column] = &b
	}

	for _, block := range e.ctrl.Blocks() {
		snap.Falling = append(snap.Falling, *block)
	}

	if next, ok := e.ctrl.Next(); ok {
		preview := NewPreview(next)
		snap.Next = &preview
	}
	return snap
}

// Stats returns internal counters.
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		State:        e.state,
		Level:        e.level,
		LevelPoints:  e.levelPoints,
		Lines:        e.lines,
		Score:        e.score,
		PiecesLocked: e.piecesLocked,
		SoftDrop:     e.softDrop,
		PendingRows:  append([]int(nil), e.pendingRows...),
		Interval:     e.scheduler.Interval(),
		Blocks:       e.board.Len(),
	}
}
