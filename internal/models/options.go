package models

// IconNone is offered by the editor for links without a built-in icon. It is
// not in the symbolic table, so it renders as the title's first letter.
const IconNone = "none"

// IconCustomOption is the editor's select value for a custom class.
const IconCustomOption = "custom"

var SymbolicIcons = []string{
	"link",
	"facebook",
	"instagram",
	"twitter",
	"linkedin",
	"youtube",
	"github",
	"mail",
	"globe",
	"phone",
}

var IconOptions = []Option{
	{Value: IconNone, Label: "No Icon"},
	{Value: "link", Label: "Generic Link"},
	{Value: "facebook", Label: "Facebook"},
	{Value: "instagram", Label: "Instagram"},
	{Value: "twitter", Label: "Twitter"},
	{Value: "linkedin", Label: "LinkedIn"},
	{Value: "youtube", Label: "YouTube"},
	{Value: "github", Label: "GitHub"},
	{Value: "mail", Label: "Email"},
	{Value: "globe", Label: "Website"},
	{Value: "phone", Label: "Phone"},
	{Value: IconCustomOption, Label: "Custom FontAwesome Icon"},
}

var ColorOptions = []Option{
	{Value: "#8B5CF6", Label: "Purple"},
	{Value: "#3B82F6", Label: "Blue"},
	{Value: "#EC4899", Label: "Pink"},
	{Value: "#10B981", Label: "Green"},
	{Value: "#F97316", Label: "Orange"},
	{Value: "#EF4444", Label: "Red"},
	{Value: "#14B8A6", Label: "Teal"},
	{Value: "#F59E0B", Label: "Yellow"},
	{Value: "#6366F1", Label: "Indigo"},
}

// IconFromForm builds an Icon from the editor's select value and the custom
// class input.
func IconFromForm(choice, customClass string) Icon {
	if choice == IconCustomOption {
		return Custom(customClass)
	}
	return Symbolic(choice)
}

// Choice is the editor select value for i.
func (i Icon) Choice() string {
	if i.IsCustom() {
		return IconCustomOption
	}
	return i.Normalize().Value
}
