package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daticahealth/snapdash/profile"
)

type fakeAPI struct {
	profile profile.Result
	users   profile.Result
	calls   []string
}

func (f *fakeAPI) GetProfile(context.Context) profile.Result {
	f.calls = append(f.calls, "GetProfile")
	return f.profile
}

func (f *fakeAPI) GetAllUsers(context.Context) profile.Result {
	f.calls = append(f.calls, "GetAllUsers")
	return f.users
}

// markers are strings only the body of each section renders.
var markers = map[Section]string{
	Services:  "Backend services",
	Users:     "User moderation",
	TwitSnaps: "Twit stream",
	Profile:   "My profile",
}

func newTestModel(api *fakeAPI, logout func() error) Model {
	return New(context.Background(), Options{
		API:      api,
		Email:    "carol@example.com",
		Services: []Service{{Name: "profiles", URL: "http://profiles.test"}},
		Logout:   logout,
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds any produced messages back into m.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				m = run(t, m, c)
			}
			return m
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return m
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	next, cmd := m.Update(key(k))
	return run(t, next.(Model), cmd)
}

func TestDefaultSectionIsServices(t *testing.T) {
	m := newTestModel(&fakeAPI{}, nil)
	assert.Equal(t, Services, m.Router().Current())
}

func TestExactlyOneViewRendered(t *testing.T) {
	api := &fakeAPI{
		profile: profile.Result{Success: true, Profile: profile.Profile{"username": "carol"}},
		users:   profile.Result{Success: true, Users: []profile.UserRef{{Name: "alice"}}},
	}
	for i, s := range Sections {
		t.Run(s.String(), func(t *testing.T) {
			m := newTestModel(api, nil)
			m = run(t, m, m.Init())
			m = press(t, m, string(rune('1'+i)))

			require.Equal(t, s, m.Router().Current())
			out := m.View()
			for other, marker := range markers {
				if other == s {
					assert.Contains(t, out, marker)
				} else {
					assert.NotContains(t, out, marker)
				}
			}
		})
	}
}

func TestProfileClickForcesProfile(t *testing.T) {
	api := &fakeAPI{profile: profile.Result{Success: true, Profile: profile.Profile{"username": "carol"}}}
	m := newTestModel(api, nil)
	m = press(t, m, "2")
	require.Equal(t, Users, m.Router().Current())

	m = press(t, m, "p")

	assert.Equal(t, Profile, m.Router().Current())
	assert.Contains(t, m.View(), "carol@example.com")
	assert.Contains(t, m.View(), "username:")
}

func TestTabCyclesSections(t *testing.T) {
	m := newTestModel(&fakeAPI{}, nil)

	m = press(t, m, "tab")
	assert.Equal(t, Users, m.Router().Current())
	m = press(t, m, "shift+tab")
	m = press(t, m, "shift+tab")
	assert.Equal(t, Profile, m.Router().Current())
	m = press(t, m, "tab")
	assert.Equal(t, Services, m.Router().Current())
}

func TestViewsLoadOnce(t *testing.T) {
	api := &fakeAPI{users: profile.Result{Success: true}}
	m := newTestModel(api, nil)

	m = press(t, m, "2")
	m = press(t, m, "1")
	m = press(t, m, "2")

	assert.Equal(t, []string{"GetAllUsers"}, api.calls)
}

func TestUsersViewShowsFailureMessage(t *testing.T) {
	api := &fakeAPI{users: profile.Result{Message: "authentication token not found"}}
	m := newTestModel(api, nil)

	m = press(t, m, "2")

	assert.Contains(t, m.View(), "authentication token not found")
}

func TestUsersViewBlockToggle(t *testing.T) {
	api := &fakeAPI{users: profile.Result{Success: true, Users: []profile.UserRef{{Name: "bob"}, {Name: "alice"}}}}
	m := newTestModel(api, nil)
	m = press(t, m, "2")

	out := m.View()
	assert.Less(t, strings.Index(out, "alice"), strings.Index(out, "bob"))

	m = press(t, m, "j")
	m = press(t, m, "b")
	assert.Contains(t, m.View(), "bob [blocked]")
}

func TestLogoutCallsTeardown(t *testing.T) {
	called := 0
	m := newTestModel(&fakeAPI{profile: profile.Result{Success: true, Profile: profile.Profile{}}}, func() error {
		called++
		return nil
	})
	m = press(t, m, "p")

	m = press(t, m, "l")

	assert.Equal(t, 1, called)
	assert.True(t, m.SignedOut())
}

func TestLogoutFailureIsShown(t *testing.T) {
	m := newTestModel(&fakeAPI{}, func() error { return errors.New("disk full") })
	m = press(t, m, "p")

	m = press(t, m, "l")

	assert.False(t, m.SignedOut())
	assert.Contains(t, m.View(), "logout failed: disk full")
}

func TestRouterIgnoresUnknownSection(t *testing.T) {
	r := NewRouter(map[Section]View{Services: NewServicesView(nil)})
	assert.Nil(t, r.Select(Section(42)))
	assert.Equal(t, Services, r.Current())
}

func TestParseSection(t *testing.T) {
	for _, s := range Sections {
		got, err := ParseSection(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseSection("settings")
	assert.Error(t, err)
}
