// Package conversion maps between lightify native units and the units light
// entities expose to the host.
package conversion

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wheelibin/lightify/internal/constants"
)

const tempRangeKelvin = float64(constants.TempMaxKelvin - constants.TempMinKelvin)
const tempRangeHost = float64(constants.TempMaxHost - constants.TempMinHost)

// BrightnessFromLuminance converts luminance (0-100) to brightness (0-255),
// a factor of constants.BrightnessPerLuminance. The product is formed in
// integers since 2.55 has no exact float64 form and half steps must round up.
func BrightnessFromLuminance(lum int) int {
	lum = clamp(lum, 0, constants.LuminanceMax)
	return int(math.Round(float64(lum*constants.BrightnessMax) / constants.LuminanceMax))
}

// LuminanceFromBrightness converts brightness (0-255) to luminance (0-100).
func LuminanceFromBrightness(brightness int) int {
	brightness = clamp(brightness, 0, constants.BrightnessMax)
	return int(math.Round(float64(brightness*constants.LuminanceMax) / constants.BrightnessMax))
}

// HostTemperatureFromKelvin linearly rescales [2000K,6500K] onto [154,500],
// truncating.
func HostTemperatureFromKelvin(kelvin int) int {
	kelvin = clamp(kelvin, constants.TempMinKelvin, constants.TempMaxKelvin)
	return int(constants.TempMinHost + tempRangeHost*float64(kelvin-constants.TempMinKelvin)/tempRangeKelvin)
}

// KelvinFromHostTemperature is the inverse of HostTemperatureFromKelvin.
func KelvinFromHostTemperature(host int) int {
	host = clamp(host, constants.TempMinHost, constants.TempMaxHost)
	return int(tempRangeKelvin*float64(host-constants.TempMinHost)/tempRangeHost + constants.TempMinKelvin)
}

// TransitionDeciseconds converts a transition in seconds to the deciseconds
// the gateway expects.
func TransitionDeciseconds(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(seconds * 10))
}

// XYFromRGB returns the CIE 1931 chromaticity of an sRGB colour. Black has no
// chromaticity and maps to the D65 white point.
func XYFromRGB(r, g, b uint8) (float64, float64) {
	if r == 0 && g == 0 && b == 0 {
		return 0.3127, 0.3290
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	x, y, _ := c.Xyy()
	return x, y
}

// RGBFromXY returns the full brightness sRGB colour for a chromaticity.
func RGBFromXY(x, y float64) (uint8, uint8, uint8) {
	c := colorful.Xyy(x, y, 1.0)

	// scale so the brightest channel is saturated
	peak := math.Max(c.R, math.Max(c.G, c.B))
	if peak > 0 {
		c = colorful.Color{R: c.R / peak, G: c.G / peak, B: c.B / peak}
	}
	return c.Clamped().RGB255()
}

func clamp(v, lower, upper int) int {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
