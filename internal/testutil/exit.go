package testutil

// ExitRecorder stands in for os.Exit. Exit records the status and returns,
// so the code under test keeps running after the call.
type ExitRecorder struct {
	Codes []int
}

// Exit records code.
func (e *ExitRecorder) Exit(code int) {
	e.Codes = append(e.Codes, code)
}

// Called reports whether Exit was invoked at least once.
func (e *ExitRecorder) Called() bool { return len(e.Codes) > 0 }

// Last returns the most recent exit status, or -1 if Exit was never called.
func (e *ExitRecorder) Last() int {
	if len(e.Codes) == 0 {
		return -1
	}
	return e.Codes[len(e.Codes)-1]
}
