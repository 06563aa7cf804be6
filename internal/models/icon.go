package models

import (
	"encoding/json"
	"strings"
)

// CustomIconPrefix marks a custom icon in the persisted and form string
// representation. Inside the program icons are always an Icon value.
const CustomIconPrefix = "fa:"

type IconKind int

const (
	IconSymbolic IconKind = iota
	IconCustom
)

// Icon is either a symbolic name from the built-in set or a free-text
// FontAwesome class expression.
type Icon struct {
	Kind  IconKind
	Value string
}

func Symbolic(name string) Icon {
	if name == "" {
		name = DefaultIcon
	}
	return Icon{Kind: IconSymbolic, Value: name}
}

func Custom(class string) Icon {
	return Icon{Kind: IconCustom, Value: class}
}

// ParseIcon converts the stored string form into an Icon. An empty string
// becomes the generic link icon.
func ParseIcon(s string) Icon {
	if class, ok := strings.CutPrefix(s, CustomIconPrefix); ok {
		return Custom(class)
	}
	return Symbolic(s)
}

func (i Icon) IsCustom() bool {
	return i.Kind == IconCustom
}

// Normalize fills in the generic link icon for a zero symbolic value.
func (i Icon) Normalize() Icon {
	if i.Kind == IconSymbolic && i.Value == "" {
		return Symbolic(DefaultIcon)
	}
	return i
}

func (i Icon) String() string {
	if i.IsCustom() {
		return CustomIconPrefix + i.Value
	}
	return i.Normalize().Value
}

func (i Icon) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

func (i *Icon) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*i = ParseIcon(s)
	return nil
}
