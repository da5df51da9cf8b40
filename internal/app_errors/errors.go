package app_errors

import "errors"

var ErrAccountNotFound = errors.New("account not found")
var ErrCredentialMismatch = errors.New("credential mismatch")
var ErrEmailTaken = errors.New("email address already in use")
var ErrCourseNotFound = errors.New("course not found")
var ErrNotCourseOwner = errors.New("you are not the course owner")
