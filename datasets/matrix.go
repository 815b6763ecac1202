package datasets

// Normalize rescales the rows in place as (x + noise) / (255 + 2*noise).
// Pixels in [0, 255+noise] end up in [noise/(255+2*noise), 1].
func Normalize(X [][]float64, noise float64) {
	var div = 255 + 2*noise
	for _, row := range X {
		for j := range row {
			row[j] = (row[j] + noise) / div
		}
	}
}

// OneHot encodes the category labels as indicator rows of the given width
func OneHot(labels []uint16, classes int) [][]float64 {
	var ret = make([][]float64, len(labels))
	for i, label := range labels {
		ret[i] = make([]float64, classes)
		if int(label) < classes {
			ret[i][label] = 1
		}
	}
	return ret
}

// ArgMax decodes one indicator or score row back into its category
func ArgMax(row []float64) (best int) {
	for i := range row {
		if row[i] > row[best] {
			best = i
		}
	}
	return
}

// Flatten concatenates the rows into one row-major slice
func Flatten(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	var ret = make([]float64, 0, len(X)*len(X[0]))
	for _, row := range X {
		ret = append(ret, row...)
	}
	return ret
}
