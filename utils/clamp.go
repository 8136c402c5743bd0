package utils

// ClampUnit limits x to the [-1, 1] sample range.
func ClampUnit(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}

	return x
}
