package domain

import "errors"

var (
	ErrRoadmapNotFound    = errors.New("roadmap not found")
	ErrProjectNotFound    = errors.New("portfolio project not found")
	ErrMentorNotFound     = errors.New("mentor not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCompletionFailed   = errors.New("completion failed")
	ErrChatBusy           = errors.New("a chat request is already in flight")
	ErrSessionInvalid     = errors.New("invalid session")
	ErrCatalogIncomplete  = errors.New("recommendation catalog incomplete")
)
