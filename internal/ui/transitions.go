package ui

import (
	"errors"
	"fmt"

	"github.com/ghssrc/survey-viewer/internal/model"
)

var (
	// ErrUnknownScreen is returned for a destination with no table entry
	ErrUnknownScreen = errors.New("unknown screen")

	// ErrTransitionNotAllowed is returned when the active screen has no
	// button leading to the destination
	ErrTransitionNotAllowed = errors.New("transition not allowed")
)

// link is one outgoing button of a screen
type link struct {
	target model.ScreenID
	label  string // localization key
}

// layoutKind selects how a screen arranges its body and buttons
type layoutKind int

const (
	// layoutPage centers heading, body and buttons in one column
	layoutPage layoutKind = iota

	// layoutView gives the body all remaining space between heading and buttons
	layoutView
)

// screenSpec declares a screen: its title, layout and outgoing buttons in
// display order
type screenSpec struct {
	title  string // localization key
	layout layoutKind
	links  []link
}

var (
	toHome   = link{target: model.ScreenHome, label: KeyBackToHome}
	toExit   = link{target: model.ScreenExit, label: KeyExit}
	homePage = link{target: model.ScreenHome, label: KeyHomePage}
)

// screenTable is the single source of truth for navigation
var screenTable = map[model.ScreenID]screenSpec{
	model.ScreenHome: {
		title:  KeyHomeTitle,
		layout: layoutPage,
		links:  []link{{model.ScreenMenu, KeyGoToMenu}, toExit},
	},
	model.ScreenMenu: {
		title:  KeyMenuTitle,
		layout: layoutPage,
		links:  []link{{model.ScreenDataMenu, KeyDataPage}, {model.ScreenProject, KeyProjectPage}, homePage, toExit},
	},
	model.ScreenDataMenu: {
		title:  KeyDataMenuTitle,
		layout: layoutPage,
		links:  []link{homePage, {model.ScreenDataVis, KeyDataVisualisation}, {model.ScreenRawData, KeyRawData}, toExit},
	},
	model.ScreenRawData: {
		title:  KeyRawDataTitle,
		layout: layoutView,
		links:  []link{toHome, toExit},
	},
	model.ScreenDataVis: {
		title:  KeyDataVisTitle,
		layout: layoutView,
		links:  []link{toHome, toExit},
	},
	model.ScreenProject: {
		title:  KeyProjectTitle,
		layout: layoutPage,
		links:  []link{{model.ScreenOverview, KeyProjectOverview}, {model.ScreenJournal, KeyProjectJournal}, toHome, toExit},
	},
	model.ScreenOverview: {
		title:  KeyOverviewTitle,
		layout: layoutView,
		links:  []link{toHome, toExit},
	},
	model.ScreenJournal: {
		title:  KeyJournalTitle,
		layout: layoutView,
		links:  []link{toHome, toExit},
	},
	model.ScreenError: {
		title:  KeyErrorTitle,
		layout: layoutPage,
		links:  []link{toHome, toExit},
	},
}

// Step is the outcome of a transition: the new state and what the navigator
// has to do to reach it
type Step struct {
	From     model.ScreenID
	To       model.ScreenID
	Teardown bool // an active screen has to be torn down
	Build    bool // the target screen has to be built and shown
	Quit     bool // the process ends
}

// Transition computes the step from current to target. An empty current
// means no screen is active yet; any screen may be opened first. The error
// panel is only entered by the navigator itself.
func Transition(current, target model.ScreenID) (Step, error) {
	step := Step{From: current, To: target, Teardown: current != ""}

	if target.IsTerminal() {
		step.Quit = true
		return step, nil
	}

	if _, ok := screenTable[target]; !ok || target == model.ScreenError {
		return Step{}, fmt.Errorf("%q: %w", target, ErrUnknownScreen)
	}

	if current != "" {
		spec, ok := screenTable[current]
		if !ok {
			return Step{}, fmt.Errorf("from %q: %w", current, ErrUnknownScreen)
		}
		if !spec.allows(target) {
			return Step{}, fmt.Errorf("%s -> %s: %w", current, target, ErrTransitionNotAllowed)
		}
	}

	step.Build = true
	return step, nil
}

func (s screenSpec) allows(target model.ScreenID) bool {
	for _, l := range s.links {
		if l.target == target {
			return true
		}
	}
	return false
}
