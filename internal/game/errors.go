package game

import "errors"

var (
	// ErrInvalidDice is returned when a game is built without dice or with a nil die.
	ErrInvalidDice = errors.New("invalid dice")

	// ErrFaceMismatch is returned when the dice of one game do not share a face set.
	ErrFaceMismatch = errors.New("dice face sets differ")

	// ErrInvalidLayout is returned for a results layout other than wide or narrow.
	ErrInvalidLayout = errors.New(`layout must be "wide" or "narrow"`)

	// ErrNotPlayed is returned when results are requested before the game was played.
	ErrNotPlayed = errors.New("game has not been played")
)
