package md2docs

import "fmt"

// CodeStyle configures the character style applied over fenced code block
// bodies.
type CodeStyle struct {
	FontFamily string
	Background Color
}

// DefaultCodeStyle is a monospace font over a light grey background.
var DefaultCodeStyle = CodeStyle{
	FontFamily: "Consolas",
	Background: Color{Red: 0.95, Green: 0.95, Blue: 0.95},
}

// compilerConfig holds internal configuration for Compiler.
type compilerConfig struct {
	code     CodeStyle
	numbered ListPreset
	bullet   ListPreset
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithCodeFont sets the font family applied to code blocks.
// Panics if family is empty (programmer error).
func WithCodeFont(family string) Option {
	if family == "" {
		panic("md2docs: WithCodeFont family must not be empty")
	}
	return func(c *Compiler) {
		c.cfg.code.FontFamily = family
	}
}

// WithCodeBackground sets the background color applied to code blocks.
// Panics if any channel is outside [0, 1] (programmer error).
func WithCodeBackground(col Color) Option {
	for _, ch := range []float64{col.Red, col.Green, col.Blue} {
		if ch < 0 || ch > 1 {
			panic(fmt.Sprintf("md2docs: WithCodeBackground channel %v out of range [0, 1]", ch))
		}
	}
	return func(c *Compiler) {
		c.cfg.code.Background = col
	}
}

// WithNumberedPreset sets the bullet preset for ordered lists.
// Panics if preset is empty (programmer error).
func WithNumberedPreset(preset ListPreset) Option {
	if preset == "" {
		panic("md2docs: WithNumberedPreset preset must not be empty")
	}
	return func(c *Compiler) {
		c.cfg.numbered = preset
	}
}

// WithBulletPreset sets the bullet preset for unordered lists.
// Panics if preset is empty (programmer error).
func WithBulletPreset(preset ListPreset) Option {
	if preset == "" {
		panic("md2docs: WithBulletPreset preset must not be empty")
	}
	return func(c *Compiler) {
		c.cfg.bullet = preset
	}
}
