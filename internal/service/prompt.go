package service

import "context"

// PromptService asks the user for confirmation before changes are applied.

type PromptService interface {
	// Confirm shows the message and returns true only for an affirmative
	// answer.
	Confirm(ctx context.Context, message string) (bool, error)
}
