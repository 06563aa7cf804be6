package page

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/alexraskin/linkcraft/internal/models"
)

func parse(t *testing.T, doc string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	return root
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func element(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func text(n *html.Node) string {
	var b strings.Builder
	for _, t := range findAll(n, func(n *html.Node) bool { return n.Type == html.TextNode }) {
		b.WriteString(t.Data)
	}
	return strings.TrimSpace(b.String())
}

func defaultSettings() models.Settings {
	return models.Settings{Theme: models.ThemeDark, AccentColor: models.DefaultAccentColor}
}

func TestRenderEndToEnd(t *testing.T) {
	profile := models.Profile{Name: "Jane", Bio: "Hi"}
	links := []models.Link{
		{ID: "1", Title: "Blog", URL: "https://x.example", Icon: models.Symbolic("globe")},
	}
	settings := models.Settings{Theme: models.ThemeLight, AccentColor: "#3B82F6"}

	out := Render(profile, links, settings)
	root := parse(t, out)

	if imgs := findAll(root, element("img")); len(imgs) != 0 {
		t.Errorf("expected no avatar image, got %d", len(imgs))
	}

	titles := findAll(root, element("title"))
	if len(titles) != 1 || text(titles[0]) != "Jane" {
		t.Errorf("expected title 'Jane', got %v", titles)
	}

	items := findAll(root, func(n *html.Node) bool { return hasClass(n, "link-item") })
	if len(items) != 1 {
		t.Fatalf("expected 1 link item, got %d", len(items))
	}
	if href := attr(items[0], "href"); href != "https://x.example" {
		t.Errorf("expected href 'https://x.example', got %q", href)
	}
	spans := findAll(items[0], element("span"))
	if len(spans) != 1 || text(spans[0]) != "Blog" {
		t.Error("expected anchor text 'Blog'")
	}

	if strings.Contains(out, CreditURL) {
		t.Error("expected no attribution footer")
	}
	if !strings.Contains(out, "--primary-color: #3B82F6;") {
		t.Error("expected accent colour variable to be set")
	}
	if !strings.Contains(out, `<html lang="en" class="light">`) {
		t.Error("expected light theme class on root")
	}
	if !strings.Contains(out, iconSVGs["globe"]) {
		t.Error("expected globe icon markup")
	}
}

func TestRenderSingleDocument(t *testing.T) {
	inputs := []models.State{
		{},
		models.DefaultState(),
		{Links: []models.Link{{}, {Title: "x"}}},
	}
	for _, s := range inputs {
		out := RenderState(s)
		if out == "" {
			t.Fatal("expected non-empty output")
		}
		if n := strings.Count(out, "<html"); n != 1 {
			t.Errorf("expected one root element, got %d", n)
		}
		if out != strings.TrimSpace(out) {
			t.Error("expected trimmed output")
		}
		if !strings.HasPrefix(out, "<!DOCTYPE html>") {
			t.Error("expected doctype first")
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	build := func() models.State {
		return models.State{
			Profile: models.Profile{Name: "Ana", Avatar: "https://img.example/a.png", Bio: "bio"},
			Links: []models.Link{
				{ID: "a", Title: "Site", URL: "https://a.example", Icon: models.Symbolic("link")},
				{ID: "b", Title: "Chat", URL: "https://t.me/x", Icon: models.Custom("brands fa-telegram")},
			},
			Settings: models.Settings{Theme: models.ThemeDark, AccentColor: "#EC4899", ShowCredit: true},
		}
	}
	if RenderState(build()) != RenderState(build()) {
		t.Error("expected byte-identical output for equal inputs")
	}
}

func TestRenderFallbacks(t *testing.T) {
	out := Render(models.Profile{}, nil, models.Settings{})
	if !strings.Contains(out, "<title>My Profile</title>") {
		t.Error("expected fallback title")
	}
	if !strings.Contains(out, `content="Created with LinkCraft"`) {
		t.Error("expected fallback description")
	}
	if !strings.Contains(out, `<h1 class="profile-name">Your Name</h1>`) {
		t.Error("expected fallback name heading")
	}
	if !strings.Contains(out, "--primary-color: #8B5CF6;") {
		t.Error("expected default accent colour")
	}
	if !strings.Contains(out, "background-color: var(--background-light);") {
		t.Error("expected light palette for an unset theme")
	}
}

func TestRenderAvatar(t *testing.T) {
	url := "https://img.example/me.png"
	out := Render(models.Profile{Avatar: url}, nil, defaultSettings())
	imgs := findAll(parse(t, out), element("img"))
	if len(imgs) != 1 {
		t.Fatalf("expected 1 image, got %d", len(imgs))
	}
	if src := attr(imgs[0], "src"); src != url {
		t.Errorf("expected src %q, got %q", url, src)
	}
	if alt := attr(imgs[0], "alt"); alt != "Profile" {
		t.Errorf("expected fallback alt, got %q", alt)
	}
	if strings.Count(out, url) != 1 {
		t.Error("expected the avatar URL exactly once")
	}
}

func TestRenderLinkOrder(t *testing.T) {
	links := []models.Link{
		{ID: "1", Title: "One", URL: "https://1.example"},
		{ID: "2", Title: "Two", URL: "https://2.example"},
		{ID: "3", Title: "", URL: "https://3.example"},
	}
	out := Render(models.Profile{}, links, defaultSettings())
	items := findAll(parse(t, out), func(n *html.Node) bool { return hasClass(n, "link-item") })
	if len(items) != len(links) {
		t.Fatalf("expected %d link items, got %d", len(links), len(items))
	}
	for i, item := range items {
		if got := attr(item, "href"); got != links[i].URL {
			t.Errorf("item %d: expected href %q, got %q", i, links[i].URL, got)
		}
	}
	if got := text(findAll(items[2], element("span"))[0]); got != "Untitled" {
		t.Errorf("expected fallback link title, got %q", got)
	}

	for i, want := range []string{"0.2s", "0.3s", "0.4s"} {
		rule := ".link-item:nth-child(" + string(rune('1'+i)) + ") { animation-delay: " + want + "; }"
		if !strings.Contains(out, rule) {
			t.Errorf("expected delay rule %q", rule)
		}
	}
	if strings.Contains(out, "nth-child(4)") {
		t.Error("expected one delay rule per link")
	}
}

func TestRenderFontAwesomeScript(t *testing.T) {
	plain := []models.Link{{Title: "a", Icon: models.Symbolic("github")}}
	out := Render(models.Profile{}, plain, defaultSettings())
	if strings.Contains(out, FontAwesomeKit) {
		t.Error("expected no icon-library script without custom icons")
	}

	custom := append(plain,
		models.Link{Title: "b", Icon: models.Custom("brands fa-telegram")},
		models.Link{Title: "c", Icon: models.Custom("solid fa-house")},
	)
	out = Render(models.Profile{}, custom, defaultSettings())
	if n := strings.Count(out, FontAwesomeKit); n != 1 {
		t.Errorf("expected icon-library script once, got %d", n)
	}
	if !strings.Contains(out, `<i class="fab fa-telegram"></i>`) {
		t.Error("expected brands telegram tag")
	}
}

func TestRenderCredit(t *testing.T) {
	off := Render(models.Profile{}, nil, defaultSettings())
	if strings.Contains(off, "page-footer footer") {
		t.Error("expected no attribution block")
	}

	s := defaultSettings()
	s.ShowCredit = true
	on := Render(models.Profile{}, nil, s)
	footers := findAll(parse(t, on), func(n *html.Node) bool { return hasClass(n, "page-footer") })
	if len(footers) != 1 {
		t.Fatalf("expected one attribution block, got %d", len(footers))
	}
	anchors := findAll(footers[0], element("a"))
	if len(anchors) != 1 || attr(anchors[0], "href") != CreditURL || text(anchors[0]) != ProductName {
		t.Error("expected attribution link to the product page")
	}
}

func TestIconHTML(t *testing.T) {
	linkSVG := iconSVGs["link"]
	tests := []struct {
		name string
		link models.Link
		want string
	}{
		{name: "custom brands", link: models.Link{Title: "T", Icon: models.Custom("brands fa-telegram")}, want: `<i class="fab fa-telegram"></i>`},
		{name: "custom empty with title", link: models.Link{Title: "telegram", Icon: models.Custom("")}, want: `<div class="first-letter">T</div>`},
		{name: "custom whitespace with title", link: models.Link{Title: "site", Icon: models.ParseIcon("fa: ")}, want: `<div class="first-letter">S</div>`},
		{name: "custom empty without title", link: models.Link{Icon: models.Custom("  ")}, want: linkSVG},
		{name: "symbolic", link: models.Link{Title: "x", Icon: models.Symbolic("mail")}, want: iconSVGs["mail"]},
		{name: "none uses letter", link: models.Link{Title: "écrire", Icon: models.Symbolic(models.IconNone)}, want: `<div class="first-letter">É</div>`},
		{name: "unknown without title", link: models.Link{Icon: models.Symbolic("myspace")}, want: linkSVG},
		{name: "zero icon", link: models.Link{Title: "z"}, want: linkSVG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IconHTML(tt.link); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSymbolicIconTable(t *testing.T) {
	for _, name := range models.SymbolicIcons {
		if _, ok := SymbolicIcon(name); !ok {
			t.Errorf("missing markup for %q", name)
		}
	}
	if _, ok := SymbolicIcon(models.IconNone); ok {
		t.Error("'none' must not have markup")
	}
}
