package stage

// syntheticPointerEvent represents a single injected frame of pointer input.
type syntheticPointerEvent struct {
	pos     Vec2
	inside  bool
	pressed bool
}

// InjectedPointer is a PointerSource fed by queued synthetic events, one per
// frame. When the queue is empty the pointer rests at its last position with
// no press. Use it for tests, replays and scripted demos.
type InjectedPointer struct {
	queue []syntheticPointerEvent
	last  PointerState
}

// NewInjectedPointer returns an injected pointer that starts outside the
// surface.
func NewInjectedPointer() *InjectedPointer {
	return &InjectedPointer{}
}

// InjectMove queues a frame with the pointer at (x, y) and no press.
func (p *InjectedPointer) InjectMove(x, y float64) {
	p.queue = append(p.queue, syntheticPointerEvent{pos: Vec2{X: x, Y: y}, inside: true})
}

// InjectPress queues a frame with the pointer at (x, y) and a primary-button
// press edge.
func (p *InjectedPointer) InjectPress(x, y float64) {
	p.queue = append(p.queue, syntheticPointerEvent{pos: Vec2{X: x, Y: y}, inside: true, pressed: true})
}

// InjectClick is an alias of InjectPress: the update pass reacts to the press
// edge, so a click is a single frame.
func (p *InjectedPointer) InjectClick(x, y float64) {
	p.InjectPress(x, y)
}

// InjectLeave queues a frame with the pointer outside the surface.
func (p *InjectedPointer) InjectLeave() {
	p.queue = append(p.queue, syntheticPointerEvent{})
}

// InjectPath queues a move from (fromX, fromY) to (toX, toY) spread linearly
// over frames frames, ending exactly at the destination. Minimum 1 frame.
func (p *InjectedPointer) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of queued frames.
func (p *InjectedPointer) Pending() int {
	return len(p.queue)
}

// Poll implements PointerSource by popping one queued frame.
func (p *InjectedPointer) Poll() PointerState {
	if len(p.queue) == 0 {
		p.last.JustPressed = false
		return p.last
	}
	evt := p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]

	p.last = PointerState{Pos: evt.pos, InSurface: evt.inside, JustPressed: evt.pressed}
	return p.last
}
