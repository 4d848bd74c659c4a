package home

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is a section body mounted by the Router.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
}

// Router holds the current section and the view mounted for each one.
type Router struct {
	current Section
	views   map[Section]View
	started map[Section]bool
}

// NewRouter builds a Router showing Services. views must hold one View per section.
func NewRouter(views map[Section]View) *Router {
	return &Router{
		current: Services,
		views:   views,
		started: map[Section]bool{},
	}
}

// Current returns the selected section.
func (r *Router) Current() Section {
	return r.current
}

// Select switches to s. The returned command initializes the view the first
// time it is shown; it is nil otherwise. Unknown sections are ignored.
func (r *Router) Select(s Section) tea.Cmd {
	if !s.Valid() {
		return nil
	}
	r.current = s
	if r.started[s] {
		return nil
	}
	r.started[s] = true
	if v := r.views[s]; v != nil {
		return v.Init()
	}
	return nil
}

// ProfileClick is the top bar shortcut to the profile section.
func (r *Router) ProfileClick() tea.Cmd {
	return r.Select(Profile)
}

// Active returns the view for the current section.
func (r *Router) Active() View {
	return r.views[r.current]
}

// Update forwards msg to the active view.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	v := r.views[r.current]
	if v == nil {
		return nil
	}
	v, cmd := v.Update(msg)
	r.views[r.current] = v
	return cmd
}

// Broadcast forwards msg to every view. Used for results of background loads,
// which may arrive after the user navigated away.
func (r *Router) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range Sections {
		v := r.views[s]
		if v == nil {
			continue
		}
		v, cmd := v.Update(msg)
		r.views[s] = v
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Render returns the body of the current section.
func (r *Router) Render() string {
	if v := r.Active(); v != nil {
		return v.View()
	}
	return ""
}
