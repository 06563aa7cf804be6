package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// StorageKey is the key the state blob is stored under.
const StorageKey = "linkcraft-data"

// State is everything the page serializer needs.
type State struct {
	Profile  Profile
	Links    []Link
	Settings Settings
}

func DefaultState() State {
	return State{
		Links: []Link{},
		Settings: Settings{
			Theme:       ThemeDark,
			AccentColor: DefaultAccentColor,
			ShowCredit:  false,
		},
	}
}

func NewLink() Link {
	return Link{
		ID:   uuid.NewString(),
		Icon: Symbolic(DefaultIcon),
	}
}

func (s *State) AddLink(l Link) {
	if l.ID == "" || s.indexOf(l.ID) >= 0 {
		l.ID = uuid.NewString()
	}
	l.Icon = l.Icon.Normalize()
	s.Links = append(s.Links, l)
}

// RemoveLink deletes the link at index. It reports false when index is out
// of range.
func (s *State) RemoveLink(index int) bool {
	if index < 0 || index >= len(s.Links) {
		return false
	}
	s.Links = append(s.Links[:index:index], s.Links[index+1:]...)
	return true
}

func (s *State) UpdateLink(id, title, url string, icon Icon) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.Links[i].Title = title
	s.Links[i].URL = url
	s.Links[i].Icon = icon.Normalize()
	return true
}

// Reset clears the profile and the links. Presentation settings survive.
func (s *State) Reset() {
	s.Profile = Profile{}
	s.Links = []Link{}
}

// Clone returns a copy that shares no link storage with s.
func (s State) Clone() State {
	links := make([]Link, len(s.Links))
	copy(links, s.Links)
	s.Links = links
	return s
}

func (s *State) indexOf(id string) int {
	for i, l := range s.Links {
		if l.ID == id {
			return i
		}
	}
	return -1
}

type persistedState struct {
	ProfileData  Profile `json:"profileData"`
	Links        []Link  `json:"links"`
	Theme        Theme   `json:"theme"`
	PrimaryColor string  `json:"primaryColor"`
	ShowCredit   bool    `json:"showCredit"`
}

type rawState struct {
	ProfileData  json.RawMessage `json:"profileData"`
	Links        json.RawMessage `json:"links"`
	Theme        json.RawMessage `json:"theme"`
	PrimaryColor json.RawMessage `json:"primaryColor"`
	ShowCredit   json.RawMessage `json:"showCredit"`
}

var ErrInvalidState = errors.New("invalid state blob")

func EncodeState(s State) ([]byte, error) {
	links := s.Links
	if links == nil {
		links = []Link{}
	}
	data, err := json.Marshal(persistedState{
		ProfileData:  s.Profile,
		Links:        links,
		Theme:        s.Settings.Theme,
		PrimaryColor: s.Settings.AccentColor,
		ShowCredit:   s.Settings.ShowCredit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// DecodeState reads a stored blob. Each field falls back to its default on
// its own when it is missing, empty or of the wrong type. A blob that is not
// a JSON object returns DefaultState together with an error.
func DecodeState(data []byte) (State, error) {
	s := DefaultState()

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return s, ErrInvalidState
	}

	var raw rawState
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	var profile *Profile
	if json.Unmarshal(raw.ProfileData, &profile) == nil && profile != nil {
		s.Profile = *profile
	}

	var links []Link
	if json.Unmarshal(raw.Links, &links) == nil && links != nil {
		seen := make(map[string]bool, len(links))
		for _, l := range links {
			if l.ID == "" || seen[l.ID] {
				l.ID = uuid.NewString()
			}
			seen[l.ID] = true
			l.Icon = l.Icon.Normalize()
			s.Links = append(s.Links, l)
		}
	}

	var theme string
	if json.Unmarshal(raw.Theme, &theme) == nil && theme != "" {
		s.Settings.Theme = Theme(theme)
	}

	var color string
	if json.Unmarshal(raw.PrimaryColor, &color) == nil && color != "" {
		s.Settings.AccentColor = color
	}

	var credit bool
	if json.Unmarshal(raw.ShowCredit, &credit) == nil {
		s.Settings.ShowCredit = credit
	}

	return s, nil
}
