package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/dragon-arena/components"
	"github.com/automoto/dragon-arena/fonts"
	"github.com/automoto/dragon-arena/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SettingsUI is the in-game settings panel toggled with Tab.
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	pointLightLabel *widget.Label
	volumeButton    *widget.Button
	muteButton      *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewSettingsUI builds the panel around the settings singleton.
func NewSettingsUI(settings *components.SettingsData) *SettingsUI {
	sui := &SettingsUI{Settings: settings}
	sui.titleFace = fonts.UIFace(16)
	sui.normalFace = fonts.UIFace(12)
	sui.smallFace = fonts.UIFace(11)
	sui.buildUI()
	return sui
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(sui.buildPointLightRow())
	contentContainer.AddChild(sui.buildAudioRow())
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Tab to close", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 170, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)
	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) newRow() *widget.Container {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func (sui *SettingsUI) newButton(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, 20),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func (sui *SettingsUI) buildPointLightRow() *widget.Container {
	row := sui.newRow()

	sui.pointLightLabel = widget.NewLabel(
		widget.LabelOpts.Text(PointLightText(sui.Settings.PointLightIntensity), &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(sui.pointLightLabel)
	row.AddChild(sui.newButton("-", 24, func() {
		systems.AdjustPointLight(sui.Settings, -1)
	}))
	row.AddChild(sui.newButton("+", 24, func() {
		systems.AdjustPointLight(sui.Settings, 1)
	}))
	return row
}

func (sui *SettingsUI) buildAudioRow() *widget.Container {
	row := sui.newRow()

	sui.volumeButton = sui.newButton(VolumeText(sui.Settings.SFXVolume), 90, func() {
		systems.CycleSFXVolume(sui.Settings)
	})
	row.AddChild(sui.volumeButton)

	sui.muteButton = sui.newButton(MuteText(sui.Settings.Muted), 70, func() {
		systems.ToggleMute(sui.Settings)
	})
	row.AddChild(sui.muteButton)
	return row
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update runs the widgets while the panel is open.
func (sui *SettingsUI) Update() {
	if !sui.Settings.PanelOpen {
		return
	}
	sui.UI.Update()
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}

func (sui *SettingsUI) Draw(screen *ebiten.Image) {
	if !sui.Settings.PanelOpen {
		return
	}
	sui.UI.Draw(screen)
}

// UpdateUI refreshes labels from the settings values.
func (sui *SettingsUI) UpdateUI() {
	if sui.pointLightLabel != nil {
		sui.pointLightLabel.Label = PointLightText(sui.Settings.PointLightIntensity)
	}
	if sui.volumeButton != nil {
		if textWidget := sui.volumeButton.Text(); textWidget != nil {
			textWidget.Label = VolumeText(sui.Settings.SFXVolume)
		}
	}
	if sui.muteButton != nil {
		if textWidget := sui.muteButton.Text(); textWidget != nil {
			textWidget.Label = MuteText(sui.Settings.Muted)
		}
	}
}

func PointLightText(intensity float64) string {
	return fmt.Sprintf("Point light %.2f", intensity)
}

func VolumeText(volume float64) string {
	return fmt.Sprintf("SFX %d%%", int(volume*100+0.5))
}

func MuteText(muted bool) string {
	if muted {
		return "Unmute"
	}
	return "Mute"
}
