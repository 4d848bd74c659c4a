package home

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a dashboard.
type Options struct {
	API      ProfileAPI
	Email    string
	Services []Service
	Start    Section
	// Logout tears down the session. It runs when the user logs out from the
	// profile section.
	Logout func() error
}

// New wires the four section views into a dashboard model.
func New(ctx context.Context, opts Options) Model {
	router := NewRouter(map[Section]View{
		Services:  NewServicesView(opts.Services),
		Users:     NewUsersView(ctx, opts.API),
		TwitSnaps: NewTwitSnapsView(),
		Profile:   NewProfileView(ctx, opts.API, opts.Email, opts.Logout),
	})
	if opts.Start.Valid() {
		router.current = opts.Start
	}
	return NewModel(router, opts.Email)
}

// Run shows the dashboard until the user quits and returns the final model.
func Run(ctx context.Context, opts Options, programOpts ...tea.ProgramOption) (Model, error) {
	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, programOpts...)
	final, err := tea.NewProgram(New(ctx, opts), programOpts...).Run()
	if err != nil {
		return Model{}, fmt.Errorf("running dashboard: %w", err)
	}
	return final.(Model), nil
}
