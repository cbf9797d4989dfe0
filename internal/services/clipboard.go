package services

import "context"

// Clipboard receives share text. The HTTP bridge hands the text back to the
// browser, which performs the actual copy.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
