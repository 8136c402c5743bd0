package utils

func Float32ToInt16(x float32) int16 {
	// Use 32767 for positive max to avoid overflow
	return int16(ClampUnit(x) * 32767.0)
}
