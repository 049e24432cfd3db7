package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle = "app_title"

	// Window titles
	KeyHomeTitle     = "home_title"
	KeyMenuTitle     = "menu_title"
	KeyDataMenuTitle = "data_menu_title"
	KeyRawDataTitle  = "raw_data_title"
	KeyDataVisTitle  = "data_vis_title"
	KeyProjectTitle  = "project_title"
	KeyOverviewTitle = "overview_title"
	KeyJournalTitle  = "journal_title"
	KeyErrorTitle    = "error_title"

	// Headings and descriptions
	KeyHomeHeading         = "home_heading"
	KeyHomeDescription     = "home_description"
	KeyMenuHeading         = "menu_heading"
	KeyDataMenuHeading     = "data_menu_heading"
	KeyProjectDescription  = "project_description"
	KeyErrorHeading        = "error_heading"
	KeySampleSummary       = "sample_summary"
	KeyStatisticsUndefined = "statistics_undefined"

	// Buttons
	KeyGoToMenu          = "go_to_menu"
	KeyExit              = "exit"
	KeyDataPage          = "data_page"
	KeyProjectPage       = "project_page"
	KeyHomePage          = "home_page"
	KeyBackToHome        = "back_to_home"
	KeyDataVisualisation = "data_visualisation"
	KeyRawData           = "raw_data"
	KeyProjectOverview   = "project_overview"
	KeyProjectJournal    = "project_journal"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle: "GHS SRC - Correlation Survey",

		KeyHomeTitle:     "GHS SRC - Correlation Survey Homepage",
		KeyMenuTitle:     "Page Selection",
		KeyDataMenuTitle: "Data Menu",
		KeyRawDataTitle:  "Raw Data",
		KeyDataVisTitle:  "Data Visualisation",
		KeyProjectTitle:  "Project Information",
		KeyOverviewTitle: "Project Overview",
		KeyJournalTitle:  "Project Journal",
		KeyErrorTitle:    "Error",

		KeyHomeHeading:         "Welcome to the GHS SRC\nCorrelation Survey Homepage",
		KeyHomeDescription:     "Links to other pages can be found here.\nThis is the landing portal for the UI.",
		KeyMenuHeading:         "Select a page to continue",
		KeyDataMenuHeading:     "What Kind Of Data Do You Need?",
		KeyProjectDescription:  "This project is about analyzing student learning data.",
		KeyErrorHeading:        "This page could not be loaded",
		KeySampleSummary:       "%d of %d rows plotted (%d excluded)",
		KeyStatisticsUndefined: "Correlation is undefined for this data",

		KeyGoToMenu:          "Go to Menu",
		KeyExit:              "Exit",
		KeyDataPage:          "Data Page",
		KeyProjectPage:       "Project Page",
		KeyHomePage:          "Home Page",
		KeyBackToHome:        "Back to Home",
		KeyDataVisualisation: "Data Visualisation",
		KeyRawData:           "Raw Data",
		KeyProjectOverview:   "Project Overview",
		KeyProjectJournal:    "Project Journal",
	}
}
