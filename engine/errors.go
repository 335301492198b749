package engine

import "errors"

// Invalid moves are reported as false return values, never as errors. The
// errors below signal a driver bug or a broken invariant.
var (
	ErrUnknownPileKind = errors.New("unknown pile kind")
	ErrPileIndex       = errors.New("pile index out of range")
	ErrUnsupportedPile = errors.New("pile kind not present in this variant")
	ErrNotEnoughCards  = errors.New("not enough cards in pile")
	ErrIndexOutOfRange = errors.New("card index out of range")
	ErrReplaceTooMany  = errors.New("cannot return more than one card to the draw pile")
	ErrInvalidVariant  = errors.New("invalid variant")
	ErrUnknownAction   = errors.New("unknown action type")
	ErrInvalidLayout   = errors.New("invalid layout")
)
