package service

import "errors"

var (
	ErrPageNotFound = errors.New("page not found")
	// ErrVersionConflict means the page was saved by someone else after the draft was opened.
	ErrVersionConflict = errors.New("page was changed since the draft was opened")
	ErrDraftNotFound   = errors.New("no open draft for this page")
	ErrSlugTaken       = errors.New("a page with this slug already exists")
	ErrInvalidSlug     = errors.New("page slug is required")
)
