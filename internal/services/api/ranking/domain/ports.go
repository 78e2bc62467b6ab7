package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Languages(ctx context.Context, in LanguagesInput) ([]LanguageShare, error)
}

// TrackerPort records first-seen language occurrences per username.
// Exposed to the users module, which calls it after each summary.
type TrackerPort interface {
	RecordOnce(ctx context.Context, username string, percentages map[string]int) error
}
