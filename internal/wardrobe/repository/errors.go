package repository

import "errors"

var (
	ErrEmptyUpdate = errors.New("update changes nothing")
	ErrBadImage    = errors.New("image cannot be uploaded")
)
