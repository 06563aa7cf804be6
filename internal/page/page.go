// Package page turns an editor state into a standalone HTML document.
package page

import (
	"bytes"
	_ "embed"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/alexraskin/linkcraft/internal/models"
)

const (
	ProductName       = "LinkCraft"
	CreditURL         = "https://linkcraft.qomarhsn.com"
	FontAwesomeKit    = "https://kit.fontawesome.com/9d05a115fd.js"
	AvatarPlaceholder = "https://via.placeholder.com/150?text=Profile"

	fallbackTitle       = "My Profile"
	fallbackDescription = "Created with " + ProductName
	fallbackName        = "Your Name"
	fallbackAlt         = "Profile"
	fallbackLinkTitle   = "Untitled"

	// animation delays in hundredths of a second
	delayBase = 20
	delayStep = 10
)

//go:embed page.html.tmpl
var pageTemplate string

// Values are written verbatim, so text/template rather than html/template.
var tmpl = template.Must(template.New("page").Parse(pageTemplate))

type linkView struct {
	URL   string
	Title string
	Icon  string
}

type delayRule struct {
	Child   int
	Seconds string
}

type document struct {
	Theme             models.Theme
	Dark              bool
	Title             string
	Description       string
	FontAwesome       bool
	FontAwesomeKit    string
	Accent            string
	Avatar            string
	AvatarAlt         string
	AvatarPlaceholder string
	Name              string
	Bio               string
	Links             []linkView
	Delays            []delayRule
	ShowCredit        bool
	CreditURL         string
	ProductName       string
}

// Render produces the complete document for a profile, its links and the
// presentation settings. It never fails and has no side effects: equal
// inputs give byte-identical output.
func Render(p models.Profile, links []models.Link, s models.Settings) string {
	doc := document{
		Theme:             s.Theme,
		Dark:              s.Theme == models.ThemeDark,
		Title:             or(p.Name, fallbackTitle),
		Description:       or(p.Bio, fallbackDescription),
		FontAwesome:       HasCustomIcon(links),
		FontAwesomeKit:    FontAwesomeKit,
		Accent:            or(s.AccentColor, models.DefaultAccentColor),
		Avatar:            p.Avatar,
		AvatarAlt:         or(p.Name, fallbackAlt),
		AvatarPlaceholder: AvatarPlaceholder,
		Name:              or(p.Name, fallbackName),
		Bio:               p.Bio,
		Links:             make([]linkView, 0, len(links)),
		Delays:            make([]delayRule, 0, len(links)),
		ShowCredit:        s.ShowCredit,
		CreditURL:         CreditURL,
		ProductName:       ProductName,
	}

	for i, l := range links {
		doc.Links = append(doc.Links, linkView{
			URL:   l.URL,
			Title: or(l.Title, fallbackLinkTitle),
			Icon:  IconHTML(l),
		})
		doc.Delays = append(doc.Delays, delayRule{
			Child:   i + 1,
			Seconds: animationDelay(i),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		// Every field is a plain string or bool; this cannot happen.
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// RenderState renders a whole editor state.
func RenderState(s models.State) string {
	return Render(s.Profile, s.Links, s.Settings)
}

// HasCustomIcon reports whether any link needs the FontAwesome kit.
func HasCustomIcon(links []models.Link) bool {
	for _, l := range links {
		if l.Icon.IsCustom() {
			return true
		}
	}
	return false
}

// IconHTML resolves a link's icon markup. Custom classes win, then the
// built-in table, then the first letter of the title, then the generic link
// icon.
func IconHTML(l models.Link) string {
	icon := l.Icon.Normalize()
	if icon.IsCustom() {
		if fa, ok := ParseCustomIcon(icon.Value); ok {
			return fa.HTML()
		}
	} else if svg, ok := SymbolicIcon(icon.Value); ok {
		return svg
	}

	if l.Title != "" {
		r, _ := utf8.DecodeRuneInString(l.Title)
		return `<div class="first-letter">` + strings.ToUpper(string(r)) + `</div>`
	}

	svg, _ := SymbolicIcon(models.DefaultIcon)
	return svg
}

func animationDelay(index int) string {
	return strconv.FormatFloat(float64(delayBase+index*delayStep)/100, 'f', -1, 64)
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
