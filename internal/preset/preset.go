// Package preset bundles named encoding parameter sets for the CLI.
package preset

// Preset defines encoding parameters for a conversion run.
type Preset struct {
	Name         string
	Quality      int  // 0-100
	Speed        int  // 0 slowest - 10 fastest
	MaxWidth     int  // downscale sources wider than this; 0 keeps original
	FallbackWebP bool // emit WebP in-process when avifenc is missing
}

// Built-in presets.
var presets = map[string]Preset{
	"balanced": {
		Name:         "balanced",
		Quality:      82,
		Speed:        6,
		FallbackWebP: true,
	},
	"quality": {
		Name:         "quality",
		Quality:      92,
		Speed:        3,
		FallbackWebP: true,
	},
	"fast": {
		Name:         "fast",
		Quality:      75,
		Speed:        9,
		MaxWidth:     1920,
		FallbackWebP: true,
	},
}

// Get returns a preset by name. Falls back to balanced if unknown.
func Get(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	p := presets["balanced"]
	p.Name = name // preserve requested name
	return p
}

// TargetWidth returns the output width for a source of originalWidth,
// honoring MaxWidth without ever upscaling.
func (p Preset) TargetWidth(originalWidth int) int {
	if p.MaxWidth > 0 && originalWidth > p.MaxWidth {
		return p.MaxWidth
	}
	return originalWidth
}
