package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice (not a map) because errors.Is() requires chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrSurfaceUnavailable,
		info: ErrorInfo{
			Message: "No drawing surface is available, so the clock was not started.",
			Action:  "Check surface.width and surface.height, or write frames with --png.",
		},
	},
	{
		err: ErrNotTerminal,
		info: ErrorInfo{
			Message: "The live clock needs an interactive terminal.",
			Action:  "Run 'clockface frame' for a single frame, or 'clockface run --png FILE' for headless output.",
		},
	},
	{
		err: ErrDrawFailed,
		info: ErrorInfo{
			Message: "A part of the clock could not be drawn.",
			Action:  "Re-run with --verbose and check the log file for the failing angle.",
		},
	},
	{
		err: ErrConfigNil,
		info: ErrorInfo{Message: "Configuration could not be loaded."},
	},
	{
		err: ErrConfigInvalidClock,
		info: ErrorInfo{
			Message: "The clock section of the configuration is invalid.",
			Action:  "Run 'clockface config show' and fix the clock.* values.",
		},
	},
	{
		err: ErrConfigInvalidSurface,
		info: ErrorInfo{
			Message: "The surface section of the configuration is invalid.",
			Action:  "Run 'clockface config show' and fix the surface.* values.",
		},
	},
	{
		err: ErrConfigInvalidStyle,
		info: ErrorInfo{
			Message: "The style section of the configuration is invalid.",
			Action:  "Use hex colors like #ffc0cb or names like pink.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Unknown output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInvalidTime,
		info: ErrorInfo{
			Message: "The time could not be parsed.",
			Action:  "Use the HH:MM:SS format, for example --at 06:30:45.",
		},
	},
	{
		err: ErrInvalidColor,
		info: ErrorInfo{
			Message: "The color could not be parsed.",
			Action:  "Use hex colors like #ffc0cb or names like pink.",
		},
	},
	{
		err: ErrOutputLocked,
		info: ErrorInfo{
			Message: "Another clockface is already writing this PNG file.",
			Action:  "Stop the other 'clockface run --png' or choose a different path.",
		},
	},
	{
		err:  ErrMenuCanceled,
		info: ErrorInfo{Message: "Canceled."},
	},
}

//nolint:gochecknoglobals // Built once from errorInfoEntries
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Direct sentinels hit the map; wrapped errors fall back to errors.Is().
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action. The action is empty when there is nothing the user can do.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
