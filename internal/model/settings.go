package model

// Theme selects the light or dark presentation
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// BackgroundType selects between a solid color and an image background
type BackgroundType string

const (
	BackgroundColor BackgroundType = "color"
	BackgroundImage BackgroundType = "image"
)

// Settings is the aggregate root for all user preferences. The whole object
// is persisted as one JSON snapshot on every mutation.
type Settings struct {
	Theme                Theme          `json:"theme"`
	BackgroundType       BackgroundType `json:"backgroundType"`
	BackgroundColor      string         `json:"backgroundColor"`
	BackgroundImage      string         `json:"backgroundImage"`
	WeatherLocation      string         `json:"weatherLocation"`
	Weather              bool           `json:"weather"`
	WeatherOpacity       float64        `json:"weatherOpacity"`
	ShowAddFirstURLAlert bool           `json:"showAddFirstUrlAlert"`
	Favorites            []Favorite     `json:"favorites"`
}

// DefaultSettings returns the hardcoded first-run settings, including the
// three seed favorites
func DefaultSettings() Settings {
	return Settings{
		Theme:                ThemeDark,
		BackgroundType:       BackgroundColor,
		BackgroundColor:      "",
		BackgroundImage:      "",
		WeatherLocation:      "",
		Weather:              true,
		WeatherOpacity:       1.0,
		ShowAddFirstURLAlert: true,
		Favorites: []Favorite{
			{ID: "1", Name: "Google", URL: "https://google.com"},
			{ID: "2", Name: "YouTube", URL: "https://youtube.com"},
			{ID: "3", Name: "GitHub", URL: "https://github.com"},
		},
	}
}

// Clone returns a copy whose favorites slice is independent of the receiver
func (s Settings) Clone() Settings {
	out := s
	out.Favorites = make([]Favorite, len(s.Favorites))
	copy(out.Favorites, s.Favorites)
	return out
}
