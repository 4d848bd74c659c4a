package home

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daticahealth/snapdash/profile"
)

// ProfileAPI is the subset of the profile client the dashboard uses.
type ProfileAPI interface {
	GetProfile(ctx context.Context) profile.Result
	GetAllUsers(ctx context.Context) profile.Result
}

// Service is one backend listed in the services section.
type Service struct {
	Name string
	URL  string
}

// ServicesView lists the backends the dashboard talks to.
type ServicesView struct {
	services []Service
}

// NewServicesView builds the services section.
func NewServicesView(services []Service) *ServicesView {
	return &ServicesView{services: services}
}

func (v *ServicesView) Init() tea.Cmd { return nil }

func (v *ServicesView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

func (v *ServicesView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Backend services"))
	b.WriteString("\n\n")
	if len(v.services) == 0 {
		b.WriteString(dimStyle.Render("No services configured."))
		return b.String()
	}
	for _, s := range v.services {
		fmt.Fprintf(&b, "• %-10s %s\n", s.Name, dimStyle.Render(s.URL))
	}
	return b.String()
}

// UsersLoadedMsg carries the result of listing users.
type UsersLoadedMsg struct {
	Result profile.Result
}

// UsersView is the user moderation section.
type UsersView struct {
	ctx     context.Context
	api     ProfileAPI
	loading bool
	result  *profile.Result
	cursor  int
	blocked map[string]bool
}

// NewUsersView builds the user moderation section.
func NewUsersView(ctx context.Context, api ProfileAPI) *UsersView {
	return &UsersView{ctx: ctx, api: api, blocked: map[string]bool{}}
}

func (v *UsersView) Init() tea.Cmd {
	return v.load()
}

func (v *UsersView) load() tea.Cmd {
	v.loading = true
	ctx, api := v.ctx, v.api
	return func() tea.Msg {
		return UsersLoadedMsg{Result: api.GetAllUsers(ctx)}
	}
}

func (v *UsersView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case UsersLoadedMsg:
		v.loading = false
		res := msg.Result
		if res.Success {
			sort.SliceStable(res.Users, func(i, j int) bool {
				return res.Users[i].Username() < res.Users[j].Username()
			})
		}
		v.result = &res
		v.cursor = 0
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return v, v.load()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.result != nil && v.cursor < len(v.result.Users)-1 {
				v.cursor++
			}
		case "b", "enter":
			if v.result != nil && v.result.Success && len(v.result.Users) > 0 {
				name := v.result.Users[v.cursor].Username()
				v.blocked[name] = !v.blocked[name]
			}
		}
	}
	return v, nil
}

func (v *UsersView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("User moderation"))
	b.WriteString("\n\n")
	switch {
	case v.loading:
		b.WriteString(dimStyle.Render("Loading users..."))
	case v.result == nil:
		b.WriteString(dimStyle.Render("Press r to load users."))
	case !v.result.Success:
		b.WriteString(errorStyle.Render(v.result.Message))
	case len(v.result.Users) == 0:
		b.WriteString(dimStyle.Render("No users found."))
	default:
		for i, u := range v.result.Users {
			marker := "  "
			if i == v.cursor {
				marker = "> "
			}
			line := marker + u.Username()
			if v.blocked[u.Username()] {
				line += " " + errorStyle.Render("[blocked]")
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + dimStyle.Render("↑/↓ move • b block • r reload"))
	}
	return b.String()
}

// TwitSnapsView is the twit stream section.
type TwitSnapsView struct{}

// NewTwitSnapsView builds the twit stream section.
func NewTwitSnapsView() *TwitSnapsView {
	return &TwitSnapsView{}
}

func (v *TwitSnapsView) Init() tea.Cmd { return nil }

func (v *TwitSnapsView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

func (v *TwitSnapsView) View() string {
	return titleStyle.Render("Twit stream") + "\n\n" + dimStyle.Render("No snaps to show.")
}

// ProfileLoadedMsg carries the result of fetching the signed-in profile.
type ProfileLoadedMsg struct {
	Result profile.Result
}

// LoggedOutMsg reports the outcome of the logout action.
type LoggedOutMsg struct {
	Err error
}

// ProfileView shows the signed-in user's profile and offers logout.
type ProfileView struct {
	ctx      context.Context
	api      ProfileAPI
	email    string
	onLogout func() error
	loading  bool
	result   *profile.Result
}

// NewProfileView builds the profile section. onLogout is run when the user
// asks to sign out.
func NewProfileView(ctx context.Context, api ProfileAPI, email string, onLogout func() error) *ProfileView {
	return &ProfileView{ctx: ctx, api: api, email: email, onLogout: onLogout}
}

func (v *ProfileView) Init() tea.Cmd {
	return v.load()
}

func (v *ProfileView) load() tea.Cmd {
	v.loading = true
	ctx, api := v.ctx, v.api
	return func() tea.Msg {
		return ProfileLoadedMsg{Result: api.GetProfile(ctx)}
	}
}

func (v *ProfileView) logout() tea.Cmd {
	onLogout := v.onLogout
	return func() tea.Msg {
		if onLogout == nil {
			return LoggedOutMsg{}
		}
		return LoggedOutMsg{Err: onLogout()}
	}
}

func (v *ProfileView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ProfileLoadedMsg:
		v.loading = false
		res := msg.Result
		v.result = &res
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return v, v.load()
		case "l":
			return v, v.logout()
		}
	}
	return v, nil
}

func (v *ProfileView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("My profile"))
	b.WriteString("\n\n")
	email := v.email
	if email == "" {
		email = "(not signed in)"
	}
	fmt.Fprintf(&b, "Signed in as %s\n\n", email)
	switch {
	case v.loading:
		b.WriteString(dimStyle.Render("Loading profile..."))
	case v.result == nil:
	case !v.result.Success:
		b.WriteString(errorStyle.Render(v.result.Message))
	default:
		keys := make([]string, 0, len(v.result.Profile))
		for k := range v.result.Profile {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%-14s %v\n", k+":", v.result.Profile[k])
		}
	}
	b.WriteString("\n\n" + dimStyle.Render("r reload • l log out"))
	return b.String()
}
