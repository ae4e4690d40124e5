package core

import (
	"errors"
	"strings"
)

// UserMessage provides user-friendly error information with actionable
// guidance. Message text may contain embedded newlines (the category error
// lists the valid values on a second line); clients must render it as
// plain text, not collapse it.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern maps a technical error substring to a user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns is matched case-insensitively with strings.Contains; the
// first match wins, so specific patterns come before general ones.
//
// Code ranges: CSV0xx file format, ROW0xx row validation, AUTH0xx access,
// DB0xx database, ERR000 fallback.
var errorPatterns = []errorPattern{
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "A song with this ID already exists",
			Action:  "Retry the operation; if it persists, re-export and re-import your songs",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to reach the database",
			Action:  "Please try again in a few moments",
			Code:    "DB002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "The operation timed out",
			Action:  "Try again, or import a smaller file",
			Code:    "DB003",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The request was cancelled",
			Action:  "Please try again",
			Code:    "ERR001",
		},
	},
}

// MapError translates an internal error into a UserMessage.
//
// Structured errors (FormatError, RowValidationError, the store sentinels)
// are mapped directly and keep their original text, including embedded
// newlines. Anything else falls through the pattern table, then to ERR000.
func MapError(err error) UserMessage {
	var formatErr *FormatError
	if errors.As(err, &formatErr) {
		return UserMessage{
			Message: formatErr.Reason,
			Action:  "Fix the file header and try the import again",
			Code:    "CSV001",
		}
	}

	var rowErr *RowValidationError
	if errors.As(err, &rowErr) {
		return UserMessage{
			Message: rowErr.Error(),
			Action:  "Fix the reported row and try the import again; no songs were imported",
			Code:    "ROW001",
		}
	}

	if errors.Is(err, ErrUnauthorized) {
		return UserMessage{
			Message: "You do not have access to this item",
			Action:  "Sign in with the account that owns it",
			Code:    "AUTH002",
		}
	}

	if errors.Is(err, ErrNotFound) {
		return UserMessage{
			Message: "The requested item was not found",
			Action:  "It may have been deleted; refresh and try again",
			Code:    "NF001",
		}
	}

	lower := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(lower, p.pattern) {
			return p.msg
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
}
