package content

// Icon is the closed set of glyph tags an offering can carry. Using a typed
// enumeration keeps the tag-to-glyph mapping a compile-time concern instead
// of scattering string comparisons across the display layer.
type Icon string

const (
	IconBath      Icon = "Bath"
	IconPalette   Icon = "Palette"
	IconWrench    Icon = "Wrench"
	IconHammer    Icon = "Hammer"
	IconLightbulb Icon = "Lightbulb"
	IconHome      Icon = "Home"
	IconSettings  Icon = "Settings"
	IconStar      Icon = "Star"
)

// iconLabels is the exhaustive lookup table; every Icon constant must have
// an entry, enforced by TestIconTableIsExhaustive.
var iconLabels = map[Icon]string{
	IconBath:      "🛁 Banyo",
	IconPalette:   "🎨 Dekorasyon",
	IconWrench:    "🔧 Tesisat",
	IconHammer:    "🔨 Tadilat",
	IconLightbulb: "💡 Aydınlatma",
	IconHome:      "🏠 Ev",
	IconSettings:  "⚙️ Ayarlar",
	IconStar:      "⭐ Premium",
}

// AllIcons lists every valid icon tag in display order.
func AllIcons() []Icon {
	return []Icon{
		IconBath, IconPalette, IconWrench, IconHammer,
		IconLightbulb, IconHome, IconSettings, IconStar,
	}
}

// ParseIcon maps a stored tag onto the enumeration, defaulting unknown tags
// to IconSettings so stale backend values never break rendering.
func ParseIcon(tag string) Icon {
	icon := Icon(tag)
	if _, ok := iconLabels[icon]; ok {
		return icon
	}
	return IconSettings
}

// Valid reports whether the icon is a member of the closed set.
func (i Icon) Valid() bool {
	_, ok := iconLabels[i]
	return ok
}

// Label returns the human-facing label for the icon.
func (i Icon) Label() string {
	if label, ok := iconLabels[i]; ok {
		return label
	}
	return iconLabels[IconSettings]
}
