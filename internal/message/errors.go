package message

import (
	"fmt"
	"strings"
)

// Message pairs a message key with its positional arguments. The key is what
// clients localize on; the args are interpolated into the developer-facing
// text only.
type Message struct {
	Key  string
	Args []string
}

// New creates a Message from a key and optional arguments.
func New(key string, args ...string) Message {
	return Message{Key: key, Args: args}
}

func (m Message) String() string {
	if len(m.Args) == 0 {
		return m.Key
	}

	return m.Key + ": " + strings.Join(m.Args, ", ")
}

// ValidationError signals client-caused bad input: an unknown search
// parameter, a malformed value or an invalid entity construction. Mapped to
// 400 at the HTTP boundary.
type ValidationError struct {
	Message Message
}

// NewValidationError creates a ValidationError with the given key and args.
func NewValidationError(key string, args ...string) *ValidationError {
	return &ValidationError{Message: New(key, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message.String()
}

// UnauthorizedError signals a failed permission check. Mapped to 403 at the
// HTTP boundary, or 401 when no principal could be established at all.
type UnauthorizedError struct {
	Message Message

	// Unauthenticated marks failures where no valid token was presented,
	// as opposed to a valid principal lacking the right.
	Unauthenticated bool
}

// NewUnauthorizedError creates an UnauthorizedError with the given key and args.
func NewUnauthorizedError(key string, args ...string) *UnauthorizedError {
	return &UnauthorizedError{Message: New(key, args...)}
}

// NewUnauthenticatedError creates an UnauthorizedError marked as a missing or
// invalid credential failure.
func NewUnauthenticatedError(key string, args ...string) *UnauthorizedError {
	return &UnauthorizedError{Message: New(key, args...), Unauthenticated: true}
}

func (e *UnauthorizedError) Error() string {
	return e.Message.String()
}

// NotFoundError signals a missing entity. Mapped to 404 at the HTTP boundary.
type NotFoundError struct {
	Message Message
}

// NewNotFoundError creates a NotFoundError with the given key and args.
func NewNotFoundError(key string, args ...string) *NotFoundError {
	return &NotFoundError{Message: New(key, args...)}
}

func (e *NotFoundError) Error() string {
	return e.Message.String()
}

// LocalizedResponse is the JSON body returned for any of the error types
// above.
type LocalizedResponse struct {
	MessageKey string `json:"messageKey"`
	Message    string `json:"message"`
}

// Response builds the JSON body for a message.
func (m Message) Response() LocalizedResponse {
	return LocalizedResponse{MessageKey: m.Key, Message: m.String()}
}

// Keyed is implemented by all error types carrying a message key.
type Keyed interface {
	error
	MessageKey() string
}

// MessageKey returns the i18n key of the validation failure.
func (e *ValidationError) MessageKey() string { return e.Message.Key }

// MessageKey returns the i18n key of the authorization failure.
func (e *UnauthorizedError) MessageKey() string { return e.Message.Key }

// MessageKey returns the i18n key of the lookup failure.
func (e *NotFoundError) MessageKey() string { return e.Message.Key }

var (
	_ Keyed = (*ValidationError)(nil)
	_ Keyed = (*UnauthorizedError)(nil)
	_ Keyed = (*NotFoundError)(nil)
	_       = fmt.Stringer(Message{})
)
