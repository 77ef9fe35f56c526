package tetris

// Cue names a sound effect the engine asks its host to play.
type Cue uint8

const (
	CueIllegalMove Cue = iota
	CueHit
	CueLevelUp
	CueLineClear
)

var cueNames = [...]string{"illegal-move", "hit", "level-up", "clear-line"}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// Cues lists every cue, for players that pre-render their samples.
var Cues = []Cue{CueIllegalMove, CueHit, CueLevelUp, CueLineClear}

// SoundPlayer receives fire-and-forget cues. Implementations must not block.
type SoundPlayer interface {
	Play(cue Cue)
}

// NopSound discards every cue.
type NopSound struct{}

func (NopSound) Play(Cue) {}
