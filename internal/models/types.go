package models

import "errors"

// ErrNotFound is returned when an entity id expected to exist is absent.
// Hitting it means the caller violated the store contract, not that the
// user did anything wrong.
var ErrNotFound = errors.New("entity not found")

// UpdateType tells subscribers how much derived state a mutation invalidates.
type UpdateType string

const (
	// UpdateInit marks the first population of a store.
	UpdateInit UpdateType = "INIT"
	// UpdatePatch is a single-entity change; views may patch in place.
	UpdatePatch UpdateType = "PATCH"
	// UpdateMinor may move an entity between filtered buckets; derived
	// lists must be recomputed but UI mode is kept.
	UpdateMinor UpdateType = "MINOR"
	// UpdateMajor requires recomputing derived lists and resetting
	// transient UI state such as pagination and sort order.
	UpdateMajor UpdateType = "MAJOR"
	// UpdateComment is a comment-driven film change; it affects only the
	// open detail view, never list filtering.
	UpdateComment UpdateType = "COMMENT"
)

// FilterType identifies which film bucket the UI is currently showing.
type FilterType string

const (
	FilterAll       FilterType = "all"
	FilterWatchlist FilterType = "watchlist"
	FilterHistory   FilterType = "history"
	FilterFavorites FilterType = "favorites"
)

// Emotion is the reaction tag attached to a comment.
type Emotion string

const (
	EmotionSmile    Emotion = "smile"
	EmotionSleeping Emotion = "sleeping"
	EmotionPuke     Emotion = "puke"
	EmotionAngry    Emotion = "angry"
)
