package ui

// Prompter is the dialog surface the controller talks to. Every method
// returns immediately; results arrive through the callbacks on the UI thread.
type Prompter interface {
	// PickFiles lets the user choose any number of files; nil means cancelled
	PickFiles(title string, onDone func(paths []string))

	// PickSavePath asks for a destination; "" with a nil error means cancelled
	PickSavePath(title, defaultName string, onDone func(path string, err error))

	// PickConfig asks for an existing .json file; "" means cancelled
	PickConfig(title string, onDone func(path string))

	ShowInfo(title, message string)
	ShowError(err error)
}
