package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ironsheep/oklabby/internal/config"
	"github.com/ironsheep/oklabby/internal/oklab"
)

// darkThreshold is the Oklab lightness below which swatch text turns white.
const darkThreshold = 0.5

var (
	lightText = lipgloss.Color("#ffffff")
	darkText  = lipgloss.Color("#000000")
)

// Options selects the output format and styling.
type Options struct {
	Output  string // config.OutputText or config.OutputJSON
	Color   string // config.ColorAuto, ColorAlways or ColorNever
	ShowLab bool   // append the Oklab triplet in text mode
}

// OptionsFromConfig copies the presentation settings out of cfg.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Output:  cfg.Output,
		Color:   cfg.Color,
		ShowLab: cfg.ShowLab,
	}
}

// Printer writes formatted colors to an output stream.
type Printer struct {
	w        io.Writer
	opts     Options
	renderer *lipgloss.Renderer
	enc      *json.Encoder
}

// New creates a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(w)
	switch opts.Color {
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:        w,
		opts:     opts,
		renderer: r,
		enc:      json.NewEncoder(w),
	}
}

// PrintColor writes a single color line.
func (p *Printer) PrintColor(c oklab.Lab) error {
	if p.opts.Output == config.OutputJSON {
		return p.enc.Encode(oklab.Describe(c))
	}
	_, err := fmt.Fprintln(p.w, p.FormatColor(c))
	return err
}

// PrintColors writes one line per color, in order.
func (p *Printer) PrintColors(colors []oklab.Lab) error {
	for _, c := range colors {
		if err := p.PrintColor(c); err != nil {
			return err
		}
	}
	return nil
}

// PrintSteps writes one line per quantize step, prefixed by its fraction.
func (p *Printer) PrintSteps(steps []oklab.Step) error {
	for _, s := range steps {
		var err error
		if p.opts.Output == config.OutputJSON {
			err = p.enc.Encode(oklab.DescribeStep(s))
		} else {
			_, err = fmt.Fprintf(p.w, "%.2f:\t%s\n", s.Fraction, p.FormatColor(s.Color))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatColor renders the text form of c without a trailing newline.
func (p *Printer) FormatColor(c oklab.Lab) string {
	rgb := c.RGB()
	line := fmt.Sprintf("%s\trgb(%3d,%3d,%3d)", p.swatch(c, rgb), rgb.R, rgb.G, rgb.B)
	if p.opts.ShowLab {
		line += "\t" + c.String()
	}
	return line
}

func (p *Printer) swatch(c oklab.Lab, rgb oklab.RGB) string {
	fg := darkText
	if c.L < darkThreshold {
		fg = lightText
	}
	return p.renderer.NewStyle().
		Foreground(fg).
		Background(lipgloss.Color("#" + rgb.Hex())).
		Render("#" + rgb.Hex())
}
