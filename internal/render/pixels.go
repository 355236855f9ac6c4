package render

import "image/color"

// FillStateRGBA converts cell states in [0, 1] into RGBA pixels in buf by
// blending linearly between the off color (state 0) and the on color
// (state 1). Binary boards therefore render in pure on/off colors, while
// Problife boards shade by survival probability.
func FillStateRGBA(buf []byte, states []float64, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, s := range states {
		if s < 0 {
			s = 0
		}
		if s > 1 {
			s = 1
		}
		base := i * 4
		buf[base+0] = blendComponent(rOff, rOn, s)
		buf[base+1] = blendComponent(gOff, gOn, s)
		buf[base+2] = blendComponent(bOff, bOn, s)
		buf[base+3] = blendComponent(aOff, aOn, s)
	}
}

// blendComponent interpolates a single 16-bit color component and narrows it
// to 8 bits.
func blendComponent(off, on uint32, t float64) uint8 {
	v := float64(off) + (float64(on)-float64(off))*t
	return uint8(uint32(v) >> 8)
}
