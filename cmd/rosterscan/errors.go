package main

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user
// messages. Patterns are matched with strings.Contains against the full
// rendered error, so a cause buried inside a diagnostic tree still maps.
// The first matching pattern wins, so specific patterns come before the
// aggregate headlines they can appear under.
//
// Codes:
//
//	FILE001-FILE004  file access and format problems
//	USE001-USE002    malformed command input
//	WRITE001         write-back problems
//	SCAN001-SCAN006  interpretation failures
//	RUN001-RUN002    timeouts and interrupts
//	CFG001           configuration problems
//	ERR000           fallback
var errorPatterns = []errorPattern{
	// =========================================================================
	// File Errors (FILE001-FILE004)
	// =========================================================================
	{
		pattern: "unknown format",
		msg: UserMessage{
			Message: "The file type is not a supported spreadsheet format",
			Action:  "Use a .csv, .xlsx, .xls or .odf file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "The file does not exist",
			Action:  "Check the path and try again",
			Code:    "FILE002",
		},
	},
	{
		pattern: "exceeds limit",
		msg: UserMessage{
			Message: "The file is larger than the configured size limit",
			Action:  "Raise SHEET_MAX_FILE_SIZE or shrink the export",
			Code:    "FILE003",
		},
	},
	{
		pattern: "legacy .xls workbooks is not supported",
		msg: UserMessage{
			Message: "Legacy .xls files can be read but not written",
			Action:  "Save the file as .xlsx and run again",
			Code:    "FILE004",
		},
	},

	// =========================================================================
	// Command Input Errors (USE001-USE002)
	// =========================================================================
	{
		pattern: "is not column=value",
		msg: UserMessage{
			Message: "A --value flag is malformed",
			Action:  "Write each value as --value Column=Value",
			Code:    "USE001",
		},
	},
	{
		pattern: "results file",
		msg: UserMessage{
			Message: "The results file could not be used",
			Action:  "Check the YAML structure: results, then row and values per entry",
			Code:    "USE002",
		},
	},

	// =========================================================================
	// Write-back Errors (WRITE001)
	// =========================================================================
	{
		pattern: "is not in table",
		msg: UserMessage{
			Message: "The row does not exist in the analyzed file",
			Action:  "Use a row number printed by analyze",
			Code:    "WRITE001",
		},
	},

	// =========================================================================
	// Interpretation Failures (SCAN001-SCAN006)
	// Specific causes come before the aggregate headlines so the mapped
	// message names what actually went wrong.
	// =========================================================================
	{
		pattern: "too many valid interpretations",
		msg: UserMessage{
			Message: "A column reads as more than one kind of data",
			Action:  "Rename the column so only one meaning fits",
			Code:    "SCAN005",
		},
	},
	{
		pattern: "duplicate columns for role",
		msg: UserMessage{
			Message: "Two columns claim the same required role",
			Action:  "Remove or rename the duplicate column",
			Code:    "SCAN004",
		},
	},
	{
		pattern: "mismatched columns",
		msg: UserMessage{
			Message: "The bound columns span different numbers of rows",
			Action:  "Re-export the file so every column covers every row",
			Code:    "SCAN006",
		},
	},
	{
		pattern: "missing required role",
		msg: UserMessage{
			Message: "A required column could not be found",
			Action:  "The roster needs identifier, given name and family name columns",
			Code:    "SCAN003",
		},
	},
	{
		pattern: "ambiguous interpretation",
		msg: UserMessage{
			Message: "More than one header position yields a readable roster",
			Action:  "Remove the lookalike header row and run again",
			Code:    "SCAN002",
		},
	},
	{
		pattern: "no consistent interpretation",
		msg: UserMessage{
			Message: "No header position yields a readable roster",
			Action:  "See the detail below for what failed at each offset",
			Code:    "SCAN001",
		},
	},

	// =========================================================================
	// Timeouts and Interrupts (RUN001-RUN002)
	// =========================================================================
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Analysis timed out",
			Action:  "Raise ANALYZE_TIMEOUT or try a smaller file",
			Code:    "RUN001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Analysis was interrupted",
			Action:  "Run the command again",
			Code:    "RUN002",
		},
	},

	// =========================================================================
	// Configuration Errors (CFG001)
	// =========================================================================
	{
		pattern: "config load",
		msg: UserMessage{
			Message: "The configuration is invalid",
			Action:  "Check the environment variables named below",
			Code:    "CFG001",
		},
	},
	{
		pattern: "validation failed",
		msg: UserMessage{
			Message: "The configuration is invalid",
			Action:  "Check the environment variables named below",
			Code:    "CFG001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the detail below",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and
// returns the first match, falling back to ERR000.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether the error matches a known pattern and
// deserves a headline above the raw detail.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
