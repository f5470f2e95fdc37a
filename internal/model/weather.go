package model

// Condition classifies a weather reading into a small fixed set
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionStorm        Condition = "storm"
)

// ConditionFromCode maps an open-meteo weather code onto a Condition.
// Unmapped codes default to clear.
func ConditionFromCode(code int) Condition {
	switch code {
	case 1, 2, 3:
		return ConditionPartlyCloudy
	case 45, 48:
		return ConditionCloudy
	case 51, 53, 55, 61, 63, 65, 80, 81, 82:
		return ConditionRain
	case 71, 73, 75, 77, 85, 86:
		return ConditionSnow
	case 95, 96, 99:
		return ConditionStorm
	default:
		return ConditionClear
	}
}

// WeatherData is one reading from the weather collaborator. It is never
// persisted; a fresh reading replaces it on every poll.
type WeatherData struct {
	Temperature int
	Condition   Condition
	Location    string
	Humidity    int
	WindSpeed   int
}
