package atomo

// Key names a decoded input key. Printable characters arrive as KeyRune with
// the character itself in KeyEvent.Rune; everything else is a named control
// or navigation key.
type Key int

const (
	KeyRune Key = iota
	KeyExit
	KeySave
	KeyFind
	KeyCutLine
	KeyPasteLine
	KeyHelp
	KeyLineStart
	KeyLineEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEscape
	KeyUnknown
)

// KeyEvent is one decoded input event from the terminal.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// Editor - The main interface that represents the program. At any point there will be just one
// instantiation of Editor. The program passes decoded key events that the user provides (via the
// terminal), and the editor handles the manipulation of internal state and publishing of that
// state (by repainting the screen). Handle returns io.EOF once the user has asked the editor to
// terminate.
type Editor interface {
	Handle(ev KeyEvent) error
}
