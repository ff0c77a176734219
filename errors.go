package mvpcount

// InputUnavailable - Custom error to inform that the input file could not be opened or read
type InputUnavailable struct {
	msg string
}

// Error - Used to notify that the input file could not be opened or read
func (E InputUnavailable) Error() string {
	if E.msg == "" {
		return "input file unavailable"
	}
	return E.msg
}

// ReportWriteError - Custom error to inform that the report file could not be created, written or closed
type ReportWriteError struct {
	msg string
}

// Error - Used to notify that the report file could not be created, written or closed
func (E ReportWriteError) Error() string {
	if E.msg == "" {
		return "report write failed"
	}
	return E.msg
}
