package content

import "errors"

var (
	ErrTitleRequired   = errors.New("content: title is required")
	ErrSlugInvalid     = errors.New("content: slug contains invalid characters")
	ErrSlugExists      = errors.New("content: slug already exists")
	ErrPostNotFound    = errors.New("content: post not found")
	ErrIconInvalid     = errors.New("content: icon is not a known tag")
	ErrSettingNotFound = errors.New("content: setting not found")
)
