package categorylist

const source = "categorylist"

// Choose asks to narrow the products to category Name.
type Choose struct {
	Name string
}

func (Choose) ActionType() string { return "categorylist.choose" }
