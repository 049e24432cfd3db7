package ui

import (
	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ghssrc/survey-viewer/internal/config"
	"github.com/ghssrc/survey-viewer/internal/logging"
	"github.com/ghssrc/survey-viewer/internal/model"
	"github.com/ghssrc/survey-viewer/internal/plot"
)

// Options carries what the navigator hands to every screen
type Options struct {
	Settings     *config.Settings
	Logo         *Logo // may be nil when the logo could not be loaded
	Localization *Localization
	Plot         *plot.Builder
	Logger       zerolog.Logger

	// Quit ends the process; defaults to the app's Quit
	Quit func()
}

// activeScreen is the single live screen slot
type activeScreen struct {
	id       model.ScreenID
	instance string
	content  fyne.CanvasObject
}

// Navigator owns the application window and the one screen shown in it
type Navigator struct {
	window fyne.Window
	opts   Options
	log    zerolog.Logger
	active *activeScreen

	builders map[model.ScreenID]func() (fyne.CanvasObject, error)

	// set while the error panel is being built
	lastErr error
}

// NewNavigator creates a navigator for window. No screen is shown until the
// first Navigate call.
func NewNavigator(window fyne.Window, app fyne.App, opts Options) *Navigator {
	if opts.Settings == nil {
		opts.Settings = config.NewSettings()
	}
	if opts.Localization == nil {
		opts.Localization = NewLocalization()
	}
	if opts.Plot == nil {
		opts.Plot = plot.NewBuilder(plot.DefaultOptions())
	}
	if opts.Quit == nil {
		opts.Quit = app.Quit
	}

	n := &Navigator{
		window: window,
		opts:   opts,
		log:    logging.Component(opts.Logger, "navigator"),
	}
	n.builders = map[model.ScreenID]func() (fyne.CanvasObject, error){
		model.ScreenHome:     n.buildHome,
		model.ScreenMenu:     n.buildMenu,
		model.ScreenDataMenu: n.buildDataMenu,
		model.ScreenRawData:  n.buildRawData,
		model.ScreenDataVis:  n.buildDataVis,
		model.ScreenProject:  n.buildProject,
		model.ScreenOverview: n.buildOverview,
		model.ScreenJournal:  n.buildJournal,
		model.ScreenError:    n.buildError,
	}

	if opts.Logo != nil {
		window.SetIcon(opts.Logo.Resource)
	}
	return n
}

// Active returns the id and instance id of the screen currently shown.
// Both are empty before the first navigation.
func (n *Navigator) Active() (model.ScreenID, string) {
	if n.active == nil {
		return "", ""
	}
	return n.active.id, n.active.instance
}

// Navigate replaces the active screen with target. If the target's backing
// file cannot be loaded, an error panel leading back home is shown instead
// and the load error is returned.
func (n *Navigator) Navigate(target model.ScreenID) error {
	current, _ := n.Active()
	step, err := Transition(current, target)
	if err != nil {
		n.log.Warn().Err(err).Str("from", current.String()).Str("to", target.String()).Msg("navigation rejected")
		return err
	}

	if step.Quit {
		n.log.Info().Str("from", current.String()).Msg("exit requested")
		if step.Teardown {
			n.teardown()
		}
		n.opts.Quit()
		return nil
	}

	var content fyne.CanvasObject
	var buildErr error
	if step.Build {
		content, buildErr = n.build(target)
		if buildErr != nil {
			n.log.Error().Err(buildErr).Str("screen", target.String()).Msg("failed to build screen")
			n.lastErr = buildErr
			target = model.ScreenError
			content, _ = n.build(model.ScreenError)
			n.lastErr = nil
		}
	}

	if step.Teardown {
		n.teardown()
	}
	if step.Build {
		n.show(target, content)
	}
	return buildErr
}

// build creates the full content of a screen: body plus the buttons the
// transition table declares for it
func (n *Navigator) build(id model.ScreenID) (fyne.CanvasObject, error) {
	body, err := n.builders[id]()
	if err != nil {
		return nil, err
	}

	spec := screenTable[id]
	buttons := n.buttons(spec.links)
	if spec.layout == layoutView {
		return viewLayout(n.heading(spec.title), body, buttons), nil
	}
	return pageLayout(body, buttons), nil
}

func (n *Navigator) buttons(links []link) []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, 0, len(links))
	for _, l := range links {
		target := l.target
		out = append(out, newNavButton(n.text(l.label), func() {
			_ = n.Navigate(target)
		}))
	}
	return out
}

func (n *Navigator) teardown() {
	if n.active == nil {
		return
	}
	n.log.Debug().
		Str("screen", n.active.id.String()).
		Str("instance", n.active.instance).
		Msg("screen closed")
	n.active.content.Hide()
	n.active = nil
}

func (n *Navigator) show(id model.ScreenID, content fyne.CanvasObject) {
	n.active = &activeScreen{
		id:       id,
		instance: uuid.NewString(),
		content:  content,
	}
	n.window.SetTitle(n.text(screenTable[id].title))
	n.window.SetContent(content)

	n.log.Info().
		Str("screen", id.String()).
		Str("instance", n.active.instance).
		Msg("screen shown")
}

func (n *Navigator) text(key string) string {
	return n.opts.Localization.GetText(key)
}
