package keymap

// Binding ties keys to an action and describes it for the help popup.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "sort", "list", "products", "categories", "filter"
}

// All contains every key binding, in help order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionFilter, []string{"/"}, "Filter products", "global"},
	{ActionSwitchView, []string{"tab"}, "Switch view", "global"},
	{ActionViewProducts, []string{"f1"}, "Products view", "global"},
	{ActionViewCategories, []string{"f2"}, "Categories view", "global"},
	{ActionReload, []string{"r"}, "Reload products", "global"},
	{ActionDismiss, []string{"x", "esc"}, "Dismiss notification", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Sorting (press again to reverse)
	{ActionSortTitle, []string{"1", "t"}, "Sort by title", "sort"},
	{ActionSortPrice, []string{"2", "p"}, "Sort by price", "sort"},
	{ActionSortCategory, []string{"3", "c"}, "Sort by category", "sort"},

	// Lists
	{ActionMoveDown, []string{"j", "down"}, "Move down", "list"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	{ActionFirst, []string{"g", "home"}, "First row", "list"},
	{ActionLast, []string{"G", "end"}, "Last row", "list"},
	{ActionHalfPageDown, []string{"ctrl+d"}, "Half page down", "list"},
	{ActionHalfPageUp, []string{"ctrl+u"}, "Half page up", "list"},

	{ActionSelect, []string{"enter"}, "Product details", "products"},
	{ActionAllCategories, []string{"a"}, "Show all categories", "products"},
	{ActionSelect, []string{"enter"}, "Show only this category (again: all)", "categories"},

	// Filter input has focus
	{"", []string{"enter", "esc"}, "Leave filter", "filter"},
	{"", []string{"ctrl+u"}, "Clear filter", "filter"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
