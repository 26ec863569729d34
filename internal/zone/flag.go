package zone

import "strings"

// GlobeFlag is returned when no rule matches.
const GlobeFlag = "🌍"

// FlagRule maps an identifier prefix to a flag glyph.
type FlagRule struct {
	Prefix string
	Flag   string
}

// flagRules is evaluated top to bottom; the first prefix match wins.
// Region rules (trailing slash) and single-city rules share one list, and
// the order is significant: Canada/ sits after America/, so Canadian cities
// spelled America/Toronto get the US flag. Keep the order as is.
//
//nolint:gochecknoglobals // Fixed lookup table
var flagRules = []FlagRule{
	{Prefix: "America/", Flag: "🇺🇸"},
	{Prefix: "Europe/London", Flag: "🇬🇧"},
	{Prefix: "Europe/Paris", Flag: "🇫🇷"},
	{Prefix: "Europe/Berlin", Flag: "🇩🇪"},
	{Prefix: "Asia/Tokyo", Flag: "🇯🇵"},
	{Prefix: "Asia/Shanghai", Flag: "🇨🇳"},
	{Prefix: "Asia/Dubai", Flag: "🇦🇪"},
	{Prefix: "Asia/Kolkata", Flag: "🇮🇳"},
	{Prefix: "Australia/", Flag: "🇦🇺"},
	{Prefix: "Pacific/", Flag: "🇳🇿"},
	{Prefix: "Canada/", Flag: "🇨🇦"},
}

// Flag returns the flag glyph for a timezone identifier.
func Flag(id string) string {
	for _, r := range flagRules {
		if strings.HasPrefix(id, r.Prefix) {
			return r.Flag
		}
	}
	return GlobeFlag
}

// Rules returns a copy of the ordered rule list.
func Rules() []FlagRule {
	out := make([]FlagRule, len(flagRules))
	copy(out, flagRules)
	return out
}
