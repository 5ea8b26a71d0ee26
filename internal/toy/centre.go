package toy

import "math"

func centre(k, c int) (x, y float64) {
	angle := 2 * math.Pi * float64(k) / float64(c)
	return 2 * math.Cos(angle), 2 * math.Sin(angle)
}
