package models

// FavoriteOutcome is the result of favoriting an article. Favoriting is
// idempotent: a duplicate is an outcome, not an error.
type FavoriteOutcome int

const (
	NewFavorite FavoriteOutcome = iota
	AlreadyAFavorite
)

// UnfavoriteOutcome is the result of unfavoriting an article.
type UnfavoriteOutcome int

const (
	WasAFavorite UnfavoriteOutcome = iota
	WasNotAFavorite
)
