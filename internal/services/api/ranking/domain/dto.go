// Package domain holds DTOs for ranking http and service contracts
package domain

// LanguagesInput caps the global language ranking
type LanguagesInput struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=50" example:"5"`
}

// LanguageShare is one language's portion of the truncated ranking,
// renormalized so the returned set sums to 100
type LanguageShare struct {
	Language string  `json:"language" example:"Go"`
	Share    float64 `json:"share" example:"42.5"`
}
