package iocli

//go:generate moq -out io_mock.go . IO

// IO abstracts the interactive terminal so command flows can be tested
// with scripted input.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
}
