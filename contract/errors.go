package main

import "strconv"

// ErrorCode identifies a program failure. Numbering starts at 6000 and is
// part of the contract interface: clients match on it.
type ErrorCode uint32

const (
	TileOutOfBounds    ErrorCode = 6000
	TileAlreadySet     ErrorCode = 6001
	GameAlreadyOver    ErrorCode = 6002
	NotPlayersTurn     ErrorCode = 6003
	GameAlreadyStarted ErrorCode = 6004
)

func (c ErrorCode) Name() string {
	switch c {
	case TileOutOfBounds:
		return "TileOutOfBounds"
	case TileAlreadySet:
		return "TileAlreadySet"
	case GameAlreadyOver:
		return "GameAlreadyOver"
	case NotPlayersTurn:
		return "NotPlayersTurn"
	case GameAlreadyStarted:
		return "GameAlreadyStarted"
	default:
		return "Unknown"
	}
}

// ProgramError is a rule violation raised by the game logic.
type ProgramError struct {
	Code   ErrorCode
	Detail string
}

func (e *ProgramError) Error() string {
	msg := e.Code.Name() + " (" + strconv.FormatUint(uint64(e.Code), 10) + ")"
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func newError(code ErrorCode, detail string) *ProgramError {
	return &ProgramError{Code: code, Detail: detail}
}

// Is lets errors.Is match on the code alone.
func (e *ProgramError) Is(target error) bool {
	t, ok := target.(*ProgramError)
	return ok && t.Code == e.Code
}
