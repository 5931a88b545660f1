package engine

// Key identifies a non-character key, or KeyRune for a printable one.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Event is a host-loop input delivered to HandleEvent.
type Event interface {
	isEvent()
}

// KeyEvent is a keyboard press.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Ctrl  bool
	Alt   bool
	Shift bool
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

// FileChangeEvent reports a watched file that changed on disk.
type FileChangeEvent struct {
	Path string
}

// TickEvent is a periodic heartbeat from the host loop.
type TickEvent struct{}

func (KeyEvent) isEvent()        {}
func (ResizeEvent) isEvent()     {}
func (FileChangeEvent) isEvent() {}
func (TickEvent) isEvent()       {}

// Action tells the host loop what to do after an event.
type Action int

const (
	ActionNone Action = iota
	ActionRender
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}
