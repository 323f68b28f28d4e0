package cycle

type Key int

const (
	KeyNone Key = iota
	KeyPause
	KeyQuit
)

// Action tells the event loop what to do after an input was handled.
type Action int

const (
	Continue Action = iota
	Quit
)

// Keymap maps the text a backend reports for a key press to a Key.
type Keymap struct {
	Pause string
	Quit  string
}

var DefaultKeymap = Keymap{Pause: "p", Quit: "q"}

func (k Keymap) Lookup(s string) Key {
	switch s {
	case k.Pause:
		return KeyPause
	case k.Quit:
		return KeyQuit
	default:
		return KeyNone
	}
}
