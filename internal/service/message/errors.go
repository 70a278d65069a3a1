package message

import "errors"

var (
	ErrInvalidMissionID = errors.New("invalid mission id")
	ErrInvalidSenderID  = errors.New("invalid sender id")
	ErrEmptyContent     = errors.New("empty message content")

	ErrMissionNotFound = errors.New("mission not found")
	ErrNotParticipant  = errors.New("sender is not a mission participant")
)
