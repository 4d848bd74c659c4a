// Package home implements the snapdash dashboard: a shell that shows exactly
// one section view at a time.
package home

import "fmt"

// Section identifies which view the dashboard shows.
type Section int

const (
	Services Section = iota
	Users
	TwitSnaps
	Profile
)

// Sections lists every section in sidebar order.
var Sections = []Section{Services, Users, TwitSnaps, Profile}

var sectionNames = map[Section]string{
	Services:  "services",
	Users:     "users",
	TwitSnaps: "twitsnaps",
	Profile:   "profile",
}

var sectionLabels = map[Section]string{
	Services:  "Services",
	Users:     "Users",
	TwitSnaps: "TwitSnaps",
	Profile:   "Profile",
}

func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("section(%d)", int(s))
}

// Label is the human readable name shown in the sidebar.
func (s Section) Label() string {
	return sectionLabels[s]
}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	_, ok := sectionNames[s]
	return ok
}

// ParseSection converts a section name such as "users" into a Section.
func ParseSection(name string) (Section, error) {
	for s, n := range sectionNames {
		if n == name {
			return s, nil
		}
	}
	return Services, fmt.Errorf("unknown section %q: must be one of services, users, twitsnaps, profile", name)
}

func (s Section) next() Section {
	return Section((int(s) + 1) % len(Sections))
}

func (s Section) prev() Section {
	return Section((int(s) + len(Sections) - 1) % len(Sections))
}
