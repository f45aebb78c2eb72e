package ring

// NumPixels is the number of LEDs around the ring.
const NumPixels = 16

// Wrap maps any index onto the ring, so -1 is the LED before 0 and 16 is 0.
func Wrap(i int) int {
	i %= NumPixels
	if i < 0 {
		i += NumPixels
	}
	return i
}

// Next returns the LED after i, stepping the way the calibration chase does.
func Next(i int) int {
	return (i + 1) % NumPixels
}

// Lap lists the LEDs visited by one chase starting at origin.
func Lap(origin int) []int {
	out := make([]int, NumPixels)
	pos := origin
	for i := range out {
		out[i] = pos
		pos = Next(pos)
	}
	return out
}
