package views

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}
