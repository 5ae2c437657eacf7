package core

import "sort"

// FallDelay is the number of ticks an unsupported player waits before
// actually starting to fall. The grace period keeps a mid-push player
// from dropping the instant support is lost.
const FallDelay = 3

// Player is the controllable body. It occupies BodySize vertical cells;
// Pos is the head (top) cell.
type Player struct {
	Pos Position
	// InAir is true while a jump arc is in progress.
	InAir bool
	// IsFalling is true while descending for lack of support. Falling
	// due to gravity is distinct from jumping.
	IsFalling bool

	jumpCounter      int
	justJumped       bool
	fallDelayCounter int

	// BodySize is the vertical extent in cells (head plus body).
	BodySize int

	gridSize int
}

// NewPlayer returns a grounded player at the bottom middle of the grid.
// On even grid sizes the player starts one cell left of center.
func NewPlayer(gridSize int) *Player {
	const bodyHeight = 2

	startX := gridSize / 2
	if gridSize%2 == 0 {
		startX = gridSize/2 - 1
	}

	return &Player{
		Pos:      Position{X: startX, Y: gridSize - bodyHeight},
		BodySize: bodyHeight,
		gridSize: gridSize,
	}
}

// Jump lifts the player one cell. Only possible when grounded and not
// already against the top edge.
func (p *Player) Jump() {
	if !p.InAir && !p.IsFalling && p.Pos.Y > 0 {
		p.Pos.Y--
		p.InAir = true
		p.jumpCounter = 1
		p.justJumped = true
	}
}

// UpdateJump advances the jump timers. The tick immediately after a
// jump only clears justJumped so the landing check cannot trigger on
// the same tick the jump started.
func (p *Player) UpdateJump() {
	if p.justJumped {
		p.justJumped = false
	} else if p.InAir && p.jumpCounter > 0 {
		p.jumpCounter--
	}
}

// HasSupport reports whether the player stands on the grid bottom or on
// a resting block directly beneath the body.
func (p *Player) HasSupport(blocks []Block) bool {
	if p.Pos.Y >= p.gridSize-p.BodySize {
		return true
	}

	below := Position{X: p.Pos.X, Y: p.Pos.Y + p.BodySize}
	for i := range blocks {
		if !blocks[i].Falling && blocks[i].Pos == below {
			return true
		}
	}
	return false
}

// UpdateFallingState starts the fall-delay countdown when support is
// missing and clears falling state when support is back. Skipped
// entirely during a jump arc.
func (p *Player) UpdateFallingState(blocks []Block) {
	if p.InAir {
		return
	}

	if !p.HasSupport(blocks) {
		if !p.IsFalling && p.fallDelayCounter == 0 {
			p.fallDelayCounter = FallDelay
		}
	} else {
		p.IsFalling = false
		p.fallDelayCounter = 0
	}
}

// UpdateFallDelay counts the grace period down; when it expires the
// player transitions to falling.
func (p *Player) UpdateFallDelay() {
	if p.fallDelayCounter > 0 {
		p.fallDelayCounter--
		if p.fallDelayCounter == 0 && !p.InAir {
			p.IsFalling = true
		}
	}
}

// ApplyGravity moves a falling player down one cell per tick, never
// past the bottom of the grid.
func (p *Player) ApplyGravity() {
	if p.IsFalling && p.Pos.Y < p.gridSize-p.BodySize {
		p.Pos.Y++
	}
}

// Land resolves the end of a jump arc and the end of a fall. A jump
// that ends without support turns directly into a fall.
func (p *Player) Land(blocks []Block) {
	if p.InAir && p.jumpCounter == 0 && !p.justJumped {
		p.InAir = false
		if !p.HasSupport(blocks) {
			p.IsFalling = true
		}
	}

	if p.IsFalling && p.HasSupport(blocks) {
		p.IsFalling = false
	}
}

// MoveLeft attempts one cell of leftward movement, pushing or carrying
// blocks as needed. Blocked moves change nothing.
func (p *Player) MoveLeft(blocks []Block) {
	p.moveHorizontal(DirLeft, blocks)
}

// MoveRight attempts one cell of rightward movement, pushing or
// carrying blocks as needed. Blocked moves change nothing.
func (p *Player) MoveRight(blocks []Block) {
	p.moveHorizontal(DirRight, blocks)
}

func (p *Player) moveHorizontal(dir Direction, blocks []Block) {
	// No steering while the fall-delay grace period runs.
	if p.fallDelayCounter > 0 {
		return
	}

	if !p.canMoveInDirection(p.Pos.X, dir) {
		return
	}

	targetX := p.Pos.X + int(dir)

	if idx, ok := p.findBlockingBlock(targetX, blocks); ok {
		p.handleBlockCollision(idx, dir, targetX, blocks)
	} else {
		p.Pos.X = targetX
	}

	// Moving may have walked the player off a ledge.
	p.checkSupportAfterMove(blocks)
}

func (p *Player) checkSupportAfterMove(blocks []Block) {
	if !p.InAir && !p.IsFalling && !p.HasSupport(blocks) {
		p.fallDelayCounter = FallDelay
	}
}

// canMoveInDirection guards the grid boundary before any subtraction.
func (p *Player) canMoveInDirection(x int, dir Direction) bool {
	if dir == DirLeft {
		return x > 0
	}
	return x < p.gridSize-1
}

// findBlockingBlock scans the player's body rows at targetX, top to
// bottom, and returns the index of the first block found.
func (p *Player) findBlockingBlock(targetX int, blocks []Block) (int, bool) {
	for part := 0; part < p.BodySize; part++ {
		target := Position{X: targetX, Y: p.Pos.Y + part}
		for i := range blocks {
			if blocks[i].Pos == target {
				return i, true
			}
		}
	}
	return 0, false
}

func (p *Player) handleBlockCollision(idx int, dir Direction, playerTargetX int, blocks []Block) {
	if !p.canMoveInDirection(blocks[idx].Pos.X, dir) {
		return
	}

	blockTargetX := blocks[idx].Pos.X + int(dir)

	if blocks[idx].Falling {
		p.moveFallingBlock(idx, blockTargetX, playerTargetX, blocks)
	} else {
		p.pushRestingBlocks(blocks[idx].Pos.X, blockTargetX, playerTargetX, blocks)
	}
}

// moveFallingBlock moves a falling block sideways together with the
// player. The block is flagged as carried only when it sits at head
// level; a body-level block still moves but resumes falling on its own
// next tick.
func (p *Player) moveFallingBlock(idx, blockTargetX, playerTargetX int, blocks []Block) {
	blockTarget := Position{X: blockTargetX, Y: blocks[idx].Pos.Y}
	for i := range blocks {
		if blocks[i].Pos == blockTarget {
			return
		}
	}

	headTarget := Position{X: playerTargetX, Y: p.Pos.Y}
	for i := range blocks {
		if i == idx {
			continue
		}
		for part := 0; part < p.BodySize; part++ {
			// The head destination is where the carried block ends up.
			if part == 0 && blocks[i].Pos == headTarget {
				continue
			}
			if blocks[i].Pos == (Position{X: playerTargetX, Y: p.Pos.Y + part}) {
				return
			}
		}
	}

	if blocks[idx].Pos.Y == p.Pos.Y {
		blocks[idx].Carried = true
		if blockTargetX > blocks[idx].Pos.X {
			blocks[idx].CarryDir = DirRight
		} else {
			blocks[idx].CarryDir = DirLeft
		}
	}

	blocks[idx].Pos.X = blockTargetX
	p.Pos.X = playerTargetX
}

// pushRestingBlocks pushes the connected column of resting blocks at
// blockX. The push is all-or-nothing: if any pushable block's
// destination is taken by an outside block, nothing moves.
func (p *Player) pushRestingBlocks(blockX, blockTargetX, playerTargetX int, blocks []Block) {
	pushable := p.findPushableBlocks(blockX, blocks)
	if len(pushable) == 0 {
		return
	}

	if !p.pathClearForBlocks(pushable, blockTargetX, blocks) {
		return
	}

	for _, i := range pushable {
		blocks[i].Pos.X = blockTargetX
	}
	p.Pos.X = playerTargetX
}

// findPushableBlocks collects the resting blocks in a column that move
// with a push: the blocks at the player's body rows plus, iterated to a
// fixpoint, every block resting directly on an already-pushable block.
// Pushability propagates upward only; a stack separated by a gap stays
// behind.
func (p *Player) findPushableBlocks(blockX int, blocks []Block) []int {
	playerTop := p.Pos.Y
	playerBottom := p.Pos.Y + p.BodySize - 1

	type columnBlock struct{ idx, y int }
	var column []columnBlock
	for i := range blocks {
		if blocks[i].Pos.X == blockX && !blocks[i].Falling {
			column = append(column, columnBlock{idx: i, y: blocks[i].Pos.Y})
		}
	}
	sort.Slice(column, func(a, b int) bool { return column[a].y < column[b].y })

	var pushable []int
	marked := make(map[int]bool)
	pushableYs := make(map[int]bool)

	for _, cb := range column {
		if cb.y >= playerTop && cb.y <= playerBottom {
			pushable = append(pushable, cb.idx)
			marked[cb.idx] = true
			pushableYs[cb.y] = true
		}
	}
	if len(pushable) == 0 {
		return nil
	}

	for changed := true; changed; {
		changed = false
		for _, cb := range column {
			if marked[cb.idx] {
				continue
			}
			if cb.y > playerBottom {
				continue
			}
			if cb.y > 0 && pushableYs[cb.y+1] {
				pushable = append(pushable, cb.idx)
				marked[cb.idx] = true
				pushableYs[cb.y] = true
				changed = true
			}
		}
	}

	return pushable
}

func (p *Player) pathClearForBlocks(pushable []int, targetX int, blocks []Block) bool {
	inSet := make(map[int]bool, len(pushable))
	for _, i := range pushable {
		inSet[i] = true
	}

	for _, i := range pushable {
		target := Position{X: targetX, Y: blocks[i].Pos.Y}
		for j := range blocks {
			if blocks[j].Pos == target && !inSet[j] {
				return false
			}
		}
	}
	return true
}

// ReleaseCarriedBlocks drops every carried block whose carry direction
// differs from the player's current movement direction. A block stays
// carried only while the player keeps pushing in exactly that
// direction.
func (p *Player) ReleaseCarriedBlocks(blocks []Block, current Direction) {
	for i := range blocks {
		if blocks[i].Carried && current != blocks[i].CarryDir {
			blocks[i].Carried = false
			blocks[i].Falling = true
			blocks[i].CarryDir = DirNone
		}
	}
}
