// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit           Action = "quit"
	ActionHelp           Action = "help"
	ActionFilter         Action = "filter"
	ActionReload         Action = "reload"
	ActionDismiss        Action = "dismiss_notification"
	ActionSwitchView     Action = "switch_view"
	ActionViewProducts   Action = "view_products"
	ActionViewCategories Action = "view_categories"
	ActionAllCategories  Action = "all_categories"

	// Sorting
	ActionSortTitle    Action = "sort_title"
	ActionSortPrice    Action = "sort_price"
	ActionSortCategory Action = "sort_category"

	// Lists
	ActionMoveDown     Action = "move_down"
	ActionMoveUp       Action = "move_up"
	ActionFirst        Action = "first"
	ActionLast         Action = "last"
	ActionHalfPageDown Action = "half_page_down"
	ActionHalfPageUp   Action = "half_page_up"
	ActionSelect       Action = "select"
)
