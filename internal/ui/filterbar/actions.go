package filterbar

const source = "filterbar"

// Done signals the input gave up focus (enter or esc).
type Done struct{}

func (Done) ActionType() string { return "filterbar.done" }
