package model

// ScreenID identifies a destination the navigator can show
type ScreenID string

const (
	// ScreenHome is the landing portal
	ScreenHome ScreenID = "home"

	// ScreenMenu is the page selection screen
	ScreenMenu ScreenID = "menu"

	// ScreenDataMenu lets the user pick between raw data and visualisation
	ScreenDataMenu ScreenID = "data-menu"

	// ScreenRawData shows the dataset as a table
	ScreenRawData ScreenID = "raw-data"

	// ScreenDataVis shows the correlation plot
	ScreenDataVis ScreenID = "data-vis"

	// ScreenProject shows project information
	ScreenProject ScreenID = "project"

	// ScreenOverview renders the project overview notebook
	ScreenOverview ScreenID = "overview"

	// ScreenJournal renders the project journal notebook
	ScreenJournal ScreenID = "journal"

	// ScreenError is the panel shown when a screen fails to build
	ScreenError ScreenID = "error"

	// ScreenExit is the terminal pseudo-destination that ends the process
	ScreenExit ScreenID = "exit"
)

// String returns the string representation of ScreenID
func (s ScreenID) String() string {
	return string(s)
}

// IsTerminal returns true if navigating to the screen ends the process
func (s ScreenID) IsTerminal() bool {
	return s == ScreenExit
}

// AllScreens returns every navigable screen in a stable order
func AllScreens() []ScreenID {
	return []ScreenID{
		ScreenHome,
		ScreenMenu,
		ScreenDataMenu,
		ScreenRawData,
		ScreenDataVis,
		ScreenProject,
		ScreenOverview,
		ScreenJournal,
	}
}
