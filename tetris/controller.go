package tetris

// Controller owns the falling piece and the one-ahead preview. Every operation
// validates the candidate against the board and commits only on success.
type Controller struct {
	board          *Board
	rng            RandomSource
	sound          SoundPlayer
	randomRotation bool
	active         *Tetromino
	next           *Tetromino
	blocks         []*Block
	nextBlockID    BlockID
}

// NewController creates a controller over board. A nil sound player is replaced
// with NopSound.
func NewController(board *Board, rng RandomSource, sound SoundPlayer, randomRotation bool) *Controller {
	if sound == nil {
		sound = NopSound{}
	}
	return &Controller{
		board:          board,
		rng:            rng,
		sound:          sound,
		randomRotation: randomRotation,
	}
}

// Reset drops the active and preview pieces. Block ids keep increasing.
func (c *Controller) Reset() {
	c.active = nil
	c.next = nil
	c.blocks = nil
}

// Active returns the falling piece.
func (c *Controller) Active() (Tetromino, bool) {
	if c.active == nil {
		return Tetromino{}, false
	}
	return *c.active, true
}

// Next returns the preview piece, if one has been drawn.
func (c *Controller) Next() (Tetromino, bool) {
	if c.next == nil {
		return Tetromino{}, false
	}
	return *c.next, true
}

// Blocks returns the live blocks of the falling piece.
func (c *Controller) Blocks() []*Block {
	return c.blocks
}

func (c *Controller) draw() *Tetromino {
	typ := Catalog[c.rng.IntN(len(Catalog))]
	rotation := 0
	if c.randomRotation {
		rotation = c.rng.IntN(typ.Rotations())
	}
	return &Tetromino{Type: typ, Pivot: SpawnPosition, Rotation: rotation}
}

// Spawn promotes the preview piece to the falling piece and draws a new preview.
// It fails, leaving the preview in place, when the promoted piece does not fit.
func (c *Controller) Spawn() (Tetromino, bool) {
	if c.next == nil {
		c.next = c.draw()
	}

	candidate := c.next
	if !c.board.IsValidPlacement(*candidate) {
		return Tetromino{}, false
	}

	c.active = candidate
	c.next = c.draw()
	c.blocks = make([]*Block, 4)
	for i, p := range candidate.Positions() {
		c.blocks[i] = &Block{ID: c.nextBlockID, Type: candidate.Type.BlockType, Position: p}
		c.nextBlockID++
	}
	return *c.active, true
}

func (c *Controller) commit(t Tetromino) {
	*c.active = t
	for i, p := range t.Positions() {
		c.blocks[i].Position = p
	}
}

func (c *Controller) try(t Tetromino) bool {
	if !c.board.IsValidPlacement(t) {
		return false
	}
	c.commit(t)
	return true
}

func (c *Controller) tryOrCue(t Tetromino) bool {
	if c.try(t) {
		return true
	}
	c.sound.Play(CueIllegalMove)
	return false
}

// MoveLeft shifts the piece one column left.
func (c *Controller) MoveLeft() bool {
	if c.active == nil {
		return false
	}
	return c.tryOrCue(c.active.Translated(-1, 0))
}

// MoveRight shifts the piece one column right.
func (c *Controller) MoveRight() bool {
	if c.active == nil {
		return false
	}
	return c.tryOrCue(c.active.Translated(1, 0))
}

// Rotate advances the piece to its next rotation state. No wall kicks are tried.
func (c *Controller) Rotate() bool {
	if c.active == nil {
		return false
	}
	return c.tryOrCue(c.active.Rotated())
}

// MoveDown drops the piece one row. A false return means the piece rests on
// something and should be locked by the caller.
func (c *Controller) MoveDown() bool {
	if c.active == nil {
		return false
	}
	return c.try(c.active.Translated(0, 1))
}

// Lock releases the falling piece's blocks to the caller and clears the piece.
func (c *Controller) Lock() []*Block {
	blocks := c.blocks
	c.active = nil
	c.blocks = nil
	return blocks
}
