package models

import "errors"

// ErrMissingPrimaryKeyword is returned when generation is attempted without a
// primary keyword. It is the only hard-blocking precondition in the core.
var ErrMissingPrimaryKeyword = errors.New("primary keyword is required for SEO optimization")

// ErrArticleNotFound is returned by lookups for an unknown article ID.
var ErrArticleNotFound = errors.New("article not found")

// ErrUserNotFound is returned by lookups for an unknown user.
var ErrUserNotFound = errors.New("user not found")
