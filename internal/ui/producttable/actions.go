package producttable

import "github.com/llehouerou/shelf/internal/catalog"

const source = "producttable"

// ShowDetails asks for the details popup of Item.
type ShowDetails struct {
	Item catalog.Item
}

func (ShowDetails) ActionType() string { return "producttable.show_details" }
