package habit

import "strings"

// Option is a selectable habit type.
type Option struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Options is the fixed catalog offered when adding a habit.
var Options = []Option{
	{Name: "Smoking", Icon: "🚬"},
	{Name: "Vaping", Icon: "💨"},
	{Name: "Alcohol", Icon: "🍺"},
	{Name: "Porn", Icon: "🔞"},
	{Name: "Sugar", Icon: "🍭"},
	{Name: "Junk Food", Icon: "🍔"},
	{Name: "Doomscrolling", Icon: "📱"},
	{Name: "Social Media", Icon: "📲"},
	{Name: "Gaming", Icon: "🎮"},
	{Name: "Caffeine", Icon: "☕"},
	{Name: "Shopping", Icon: "🛒"},
	{Name: "Gambling", Icon: "🎰"},
}

// LookupOption finds a catalog entry by name, ignoring case.
func LookupOption(name string) (Option, bool) {
	for _, o := range Options {
		if strings.EqualFold(o.Name, strings.TrimSpace(name)) {
			return o, true
		}
	}
	return Option{}, false
}
