package ui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dashtab/dashtab/internal/model"
)

// WeatherWidget shows the clock, date and current conditions in the corner
// of the start page. Conditions arrive from the poller; the clock ticks on
// its own.
type WeatherWidget struct {
	widget.BaseWidget

	clockLabel     *widget.Label
	dateLabel      *widget.Label
	conditionLabel *widget.Label
	locationLabel  *widget.Label
	detailsLabel   *widget.Label
	backdrop       *canvas.Rectangle

	clockDone chan struct{}
}

// NewWeatherWidget creates the widget and starts its clock
func NewWeatherWidget() *WeatherWidget {
	w := &WeatherWidget{
		clockDone: make(chan struct{}),
	}
	w.ExtendBaseWidget(w)

	w.clockLabel = widget.NewLabel(time.Now().Format(ClockFormat))
	w.clockLabel.TextStyle = fyne.TextStyle{Bold: true}
	w.clockLabel.Alignment = fyne.TextAlignCenter

	w.dateLabel = widget.NewLabel(time.Now().Format(DateFormat))
	w.dateLabel.Alignment = fyne.TextAlignCenter

	w.conditionLabel = widget.NewLabel("")
	w.conditionLabel.Alignment = fyne.TextAlignCenter

	w.locationLabel = widget.NewLabel("")
	w.locationLabel.Alignment = fyne.TextAlignCenter

	w.detailsLabel = widget.NewLabel("")
	w.detailsLabel.Alignment = fyne.TextAlignCenter

	w.backdrop = canvas.NewRectangle(color.RGBA{R: 0, G: 0, B: 0, A: 96})
	w.backdrop.CornerRadius = 8

	w.startClock()
	return w
}

// CreateRenderer renders the widget over its translucent backdrop
func (w *WeatherWidget) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(
		w.clockLabel,
		w.dateLabel,
		w.conditionLabel,
		w.locationLabel,
		w.detailsLabel,
	)
	return widget.NewSimpleRenderer(container.NewStack(w.backdrop, container.NewPadded(content)))
}

// SetData replaces the displayed conditions with a fresh reading
func (w *WeatherWidget) SetData(data model.WeatherData) {
	w.conditionLabel.SetText(fmt.Sprintf("%s %d°C", conditionIcon(data.Condition), data.Temperature))
	w.locationLabel.SetText(data.Location)
	w.detailsLabel.SetText(fmt.Sprintf("%d%% · %d km/h", data.Humidity, data.WindSpeed))
}

// SetOpacity adjusts the backdrop transparency, 0 to 1
func (w *WeatherWidget) SetOpacity(opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	w.backdrop.FillColor = color.RGBA{R: 0, G: 0, B: 0, A: uint8(96 * opacity)}
	w.backdrop.Refresh()
}

// StopClock halts the clock ticker. Must be called when the window closes.
func (w *WeatherWidget) StopClock() {
	select {
	case <-w.clockDone:
	default:
		close(w.clockDone)
	}
}

// startClock refreshes the time and date labels every second
func (w *WeatherWidget) startClock() {
	go func() {
		ticker := time.NewTicker(ClockTick)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				fyne.Do(func() {
					w.clockLabel.SetText(now.Format(ClockFormat))
					w.dateLabel.SetText(now.Format(DateFormat))
				})
			case <-w.clockDone:
				return
			}
		}
	}()
}

// conditionIcon maps a condition onto its display symbol
func conditionIcon(condition model.Condition) string {
	switch condition {
	case model.ConditionPartlyCloudy:
		return IconPartlyCloudy
	case model.ConditionCloudy:
		return IconCloudy
	case model.ConditionRain:
		return IconRain
	case model.ConditionSnow:
		return IconSnow
	case model.ConditionStorm:
		return IconStorm
	default:
		return IconClear
	}
}
