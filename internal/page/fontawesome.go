package page

import (
	"fmt"
	"strings"
)

type Family string

const (
	FamilySolid  Family = "fas"
	FamilyBrands Family = "fab"
)

// FontAwesome is a resolved custom icon reference.
type FontAwesome struct {
	Family Family
	Name   string
}

func (f FontAwesome) HTML() string {
	return fmt.Sprintf(`<i class="%s fa-%s"></i>`, f.Family, f.Name)
}

// ParseCustomIcon resolves a class expression such as "brands fa-telegram"
// or "solid fa-house". A lone token is taken as the icon name as-is. Names
// are not validated. It reports false for an empty expression.
func ParseCustomIcon(expr string) (FontAwesome, bool) {
	parts := strings.Fields(expr)
	if len(parts) == 0 {
		return FontAwesome{}, false
	}

	icon := FontAwesome{Family: FamilySolid, Name: parts[0]}
	if len(parts) == 1 {
		return icon, true
	}

	switch parts[0] {
	case "brands", "brand":
		icon.Family = FamilyBrands
	case "solid":
		icon.Family = FamilySolid
	}
	icon.Name = strings.Replace(parts[1], "fa-", "", 1)
	return icon, true
}
