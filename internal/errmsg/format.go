// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Catalogue
	OpCatalogFetch Op = "fetch products"

	// Startup
	OpConfigLoad  Op = "load configuration"
	OpLoggerInit  Op = "initialize logging"
	OpInitialize  Op = "initialize application"
	OpUIRun       Op = "run interface"
	OpDesktopSend Op = "send desktop notification"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
