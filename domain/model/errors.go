package model

import "errors"

var (
	ErrRunNotFound     = errors.New("run not found")
	ErrNoValidTypes    = errors.New("no valid record types")
	ErrHistoryDisabled = errors.New("history store not configured")
)
