package quiz

import "errors"

var (
	ErrTestNotFound     = errors.New("test not found")
	ErrInvalidAnswers   = errors.New("invalid answers")
	ErrAlreadySubmitted = errors.New("test already submitted")
	ErrInvalidRequest   = errors.New("invalid request")
)
