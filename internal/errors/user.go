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
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrUnknownTimezone,
		info: ErrorInfo{
			Message: "The timezone is not known to the timezone database.",
			Action:  "Run 'worldclock zones' to see the configured timezones.",
		},
	},
	{
		err: ErrInvalidTimezone,
		info: ErrorInfo{
			Message: "Timezones must be 'local' or a Region/City identifier.",
			Action:  "Use an IANA identifier such as Asia/Tokyo.",
		},
	},
	{
		err: ErrDisplayRefresh,
		info: ErrorInfo{
			Message: "The clock could not be refreshed.",
			Action:  "Check the log file for details; the next tick retries automatically.",
		},
	},
	{
		err: ErrConfigNotFound,
		info: ErrorInfo{
			Message: "Configuration file not found.",
			Action:  "Check the --config path or remove the flag to use defaults.",
		},
	},
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Ensure config.yaml exists and is valid YAML.",
		},
	},
	{
		err: ErrConfigInvalidClock,
		info: ErrorInfo{
			Message: "Invalid clock configuration.",
			Action:  "Check the 'clock' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidModal,
		info: ErrorInfo{
			Message: "Invalid modal configuration.",
			Action:  "Check the 'modal' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidNotifications,
		info: ErrorInfo{
			Message: "Invalid notifications configuration.",
			Action:  "Check the 'notifications' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidZones,
		info: ErrorInfo{
			Message: "Invalid timezone list.",
			Action:  "Check the 'zones' list in config.yaml; every entry must be 'local' or a valid IANA identifier.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Unsupported output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInteractiveRequired,
		info: ErrorInfo{
			Message: "This operation requires an interactive terminal.",
			Action:  "Run in an interactive terminal, not in a script.",
		},
	},
	{
		err: ErrNoZonesMatched,
		info: ErrorInfo{
			Message: "No configured timezone matched the filter.",
			Action:  "",
		},
	},
	{
		err: ErrMenuCanceled,
		info: ErrorInfo{
			Message: "Selection canceled.",
			Action:  "",
		},
	},
	{
		err: ErrFlagConflict,
		info: ErrorInfo{
			Message: "Those options cannot be used together.",
			Action:  "Pass either a zone or --pick, not both",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
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
// action the user can take to resolve or work around the issue.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
