package ui

import (
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shoal/game"
)

// Slider describes one editable parameter.
type Slider struct {
	Label    string
	Min, Max float64
	Step     float64
	Get      func(*game.Params) float64
	Set      func(*game.Params, float64)
}

// Sliders are the host-editable parameters, in panel order. Population max
// comes from config.
func Sliders(populationMax int) []Slider {
	return []Slider{
		{
			Label: "boid_count", Min: 10, Max: float64(populationMax), Step: 1,
			Get: func(p *game.Params) float64 { return float64(p.Population) },
			Set: func(p *game.Params, v float64) { p.Population = int(v) },
		},
		{
			Label: "max_speed", Min: 0.5, Max: 5.0, Step: 0.1,
			Get: func(p *game.Params) float64 { return p.MaxSpeed },
			Set: func(p *game.Params, v float64) { p.MaxSpeed = v },
		},
		{
			Label: "max_force", Min: 0.01, Max: 0.20, Step: 0.01,
			Get: func(p *game.Params) float64 { return p.MaxForce },
			Set: func(p *game.Params, v float64) { p.MaxForce = v },
		},
		{
			Label: "speedup_threshold", Min: 1, Max: 15, Step: 1,
			Get: func(p *game.Params) float64 { return p.Satiety.SpeedupThreshold },
			Set: SetSpeedupThreshold,
		},
		{
			Label: "overfed_threshold", Min: 2, Max: 20, Step: 1,
			Get: func(p *game.Params) float64 { return p.Satiety.OverfedThreshold },
			Set: SetOverfedThreshold,
		},
		{
			Label: "satiety_decay_rate", Min: 0.001, Max: 0.020, Step: 0.001,
			Get: func(p *game.Params) float64 { return p.Satiety.DecayRate },
			Set: func(p *game.Params, v float64) { p.Satiety.DecayRate = v },
		},
		{
			Label: "speed_boost", Min: 1.0, Max: 3.0, Step: 0.1,
			Get: func(p *game.Params) float64 { return p.Satiety.SpeedBoost },
			Set: func(p *game.Params, v float64) { p.Satiety.SpeedBoost = v },
		},
		{
			Label: "speed_penalty", Min: 0.1, Max: 0.9, Step: 0.1,
			Get: func(p *game.Params) float64 { return p.Satiety.SpeedPenalty },
			Set: func(p *game.Params, v float64) { p.Satiety.SpeedPenalty = v },
		},
	}
}

// SetSpeedupThreshold sets the speedup threshold, pushing overfed up to
// stay strictly above it.
func SetSpeedupThreshold(p *game.Params, v float64) {
	p.Satiety.SpeedupThreshold = v
	if v >= p.Satiety.OverfedThreshold {
		p.Satiety.OverfedThreshold = v + 1
	}
}

// SetOverfedThreshold sets the overfed threshold, pulling speedup down to
// stay strictly below it.
func SetOverfedThreshold(p *game.Params, v float64) {
	p.Satiety.OverfedThreshold = v
	if v <= p.Satiety.SpeedupThreshold {
		p.Satiety.SpeedupThreshold = v - 1
	}
}

// Snap rounds v to the slider's step grid and clamps it to its range.
func (s Slider) Snap(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

// ParamsPanel renders the parameter sliders and writes changes back.
type ParamsPanel struct {
	renderer *Renderer
	sliders  []Slider
	x, y     int32
	width    int32
}

// NewParamsPanel creates a parameter panel.
func NewParamsPanel(x, y, width int32, populationMax int) *ParamsPanel {
	return &ParamsPanel{
		renderer: NewRenderer(),
		sliders:  Sliders(populationMax),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (pp *ParamsPanel) SetPosition(x, y int32) {
	pp.x, pp.y = x, y
}

// Draw renders the sliders plus the live satiety readout and applies any
// edits to p. It returns true when a parameter changed.
func (pp *ParamsPanel) Draw(p *game.Params, satiety float64) bool {
	r := pp.renderer
	th := r.Theme
	rowH := th.LineHeight + 18
	height := th.Padding*2 + th.LineHeight + 4 + th.LineHeight + rowH*int32(len(pp.sliders))
	r.DrawPanel(pp.x, pp.y, pp.width, height)

	x := pp.x + th.Padding
	y := r.DrawTitle(x, pp.y+th.Padding, "params")
	y = r.DrawLabelValue(x, y, "satiety", formatStep(satiety, 0.1), th.Accent)

	changed := false
	barW := float32(pp.width - th.Padding*2)
	for _, s := range pp.sliders {
		cur := s.Get(p)
		rl.DrawText(s.Label, x, y, th.FontSize, th.LabelColor)
		val := formatStep(cur, s.Step)
		rl.DrawText(val, pp.x+pp.width-th.Padding-rl.MeasureText(val, th.FontSize), y, th.FontSize, th.ValueColor)

		next := gui.SliderBar(
			rl.Rectangle{X: float32(x), Y: float32(y + th.LineHeight), Width: barW, Height: 10},
			"", "",
			float32(cur), float32(s.Min), float32(s.Max),
		)
		if v := s.Snap(float64(next)); v != cur {
			s.Set(p, v)
			changed = true
		}
		y += rowH
	}
	return changed
}
