package editor

// Key identifies which key an Event reports. KeyChar carries its rune in
// Event.Ch; every other key is self-describing.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeyBackspace
	KeyDel
	KeyTab
	KeyEsc
	KeyChar
)

// Event is a single keyboard input.
type Event struct {
	Key Key
	Ch  rune
}

// CharEvent builds a plain character input event.
func CharEvent(ch rune) Event {
	return Event{Key: KeyChar, Ch: ch}
}

// Modifiers reports which modifier keys were held during an Event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}
