package cli

// DriverError is a custom error type for driver errors
type DriverError string

// Error implements the error interface
func (e DriverError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    DriverError = "config cannot be nil"
	ErrNilEngine    DriverError = "game engine cannot be nil"
	ErrNilPrompter  DriverError = "prompter cannot be nil"
	ErrNilMessaging DriverError = "messaging service cannot be nil"
)
