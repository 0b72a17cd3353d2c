package components

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CommandKind int

const (
	CommandHover CommandKind = iota
	CommandOpen
	CommandClose
	CommandNavigate
	CommandHitPoint
)

func (k CommandKind) String() string {
	switch k {
	case CommandHover:
		return "hover"
	case CommandOpen:
		return "open"
	case CommandClose:
		return "close"
	case CommandNavigate:
		return "navigate"
	case CommandHitPoint:
		return "hit-point"
	}
	return "unknown"
}

// Command is one UI request, applied at the start of the next frame
type Command struct {
	Kind  CommandKind
	Index int        // orb index for hover, open and hit point
	On    bool       // hover state
	Dir   int        // navigate direction, -1 or +1
	Point mgl64.Vec3 // hit point in orb-local space
}

// Commands buffers commands between frames. Post may be called from any
// goroutine; Drain runs on the frame goroutine.
type Commands struct {
	mu      sync.Mutex
	pending []Command
}

type CommandQueueData struct {
	*Commands
}

var CommandQueue = donburi.NewComponentType[CommandQueueData]()

func (q *Commands) Post(c Command) {
	q.mu.Lock()
	q.pending = append(q.pending, c)
	q.mu.Unlock()
}

// Drain returns the pending commands in posting order and empties the queue.
func (q *Commands) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}
