package widget

import "github.com/gogpu/colorpick/render"

// Spectrum is the hue/saturation-value spectrum: hue across x, white to
// black down y.
type Spectrum struct {
	*area
}

// NewSpectrum creates a spectrum and runs its first render cycle.
// Relevant options: WithSize, WithValue, WithDisabled, WithOrigin,
// WithBackend, WithOnChange.
func NewSpectrum(opts ...Option) (*Spectrum, error) {
	a, err := newArea("spectrum", render.SpectrumField{}, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Spectrum{area: a}, nil
}
