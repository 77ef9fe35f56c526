package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/tetris/tetris"
)

// bot drives one engine with random input.
type bot struct {
	engine  *tetris.Engine
	rng     *rand.Rand
	over    bool
	results []tetris.MatchResult
}

func newBot(seed uint64) *bot {
	b := &bot{rng: rand.New(rand.NewPCG(seed, ^seed))}

	cfg := tetris.DefaultConfig()
	cfg.Random = tetris.NewRandomSource(seed)
	cfg.RandomRotation = true
	cfg.OnGameOver = func(r tetris.MatchResult) {
		b.results = append(b.results, r)
		b.over = true
	}
	b.engine = tetris.NewEngine(cfg)
	return b
}

var botActions = [...]tetris.Action{
	tetris.ActionMoveLeft,
	tetris.ActionMoveRight,
	tetris.ActionRotate,
	tetris.ActionSoftDropOn,
	tetris.ActionSoftDropOff,
}

// step presses at most one action and advances the engine. Finished games are
// restarted outside the tick that ended them.
func (b *bot) step(dt time.Duration) {
	if b.over {
		b.over = false
		b.engine.Reset()
	}
	if b.rng.IntN(4) == 0 {
		b.engine.Apply(botActions[b.rng.IntN(len(botActions))])
	}
	b.engine.Scheduler().Advance(dt)
}

type fleet struct {
	bots []*bot
}

func newFleet(n int, seed uint64) *fleet {
	f := &fleet{bots: make([]*bot, n)}
	for i := range f.bots {
		f.bots[i] = newBot(seed + uint64(i))
	}
	return f
}

func (f *fleet) update(dt time.Duration) {
	for _, b := range f.bots {
		b.step(dt)
	}
}

func (f *fleet) summary() Results {
	var r Results
	for _, b := range f.bots {
		for _, m := range b.results {
			r.add(m)
		}
		stats := b.engine.Stats()
		r.PiecesInPlay += stats.PiecesLocked
	}
	return r
}
