package models

const (
	DefaultAccentColor = "#8B5CF6"
	DefaultIcon        = "link"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Profile struct {
	Name   string `json:"name"`
	Avatar string `json:"profilePicture"`
	Bio    string `json:"bio"`
}

type Link struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  Icon   `json:"icon"`
}

type Settings struct {
	Theme       Theme
	AccentColor string
	ShowCredit  bool
}

type Option struct {
	Value string
	Label string
}

type EditorPageData struct {
	State    State
	Source   string
	Icons    []Option
	Colors   []Option
	Message  string
	Error    string
	AuthMode bool
}
