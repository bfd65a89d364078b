package model

import "errors"

// Common errors used across the application
var (
	// Grid errors
	ErrOutOfBounds          = errors.New("position is out of bounds")
	ErrInvalidConfiguration = errors.New("invalid grid configuration")
	ErrMinesAlreadyPlaced   = errors.New("mines have already been placed")

	// Game errors
	ErrNoGameInProgress = errors.New("no game in progress")
	ErrGameOver         = errors.New("game is already over")

	// Score errors
	ErrInvalidIdentifier = errors.New("identifier must be exactly 3 characters")

	// Persistence errors
	ErrCorruptState   = errors.New("corrupt saved state")
	ErrIOFailure      = errors.New("storage i/o failure")
	ErrSaveNotFound   = errors.New("no saved game found")
	ErrScoresNotFound = errors.New("no scoreboard found")
)
