package band

import (
	"fmt"
	"strconv"
	"strings"
)

// Unavailable is returned when a standard score is missing or not numeric.
const Unavailable = "N/A"

// Band represents a qualitative performance category for a standard score.
type Band struct {
	Label string
	Color string // hex RGB without leading '#', used for table cell fills
}

// The six bands in ascending score order. Thresholds are the upper
// (exclusive) bound of each band; the last band is open-ended.
var bands = []struct {
	upper float64
	band  Band
}{
	{70, Band{Label: "Very Low", Color: "FF4C4C"}},
	{80, Band{Label: "Low", Color: "FFA500"}},
	{90, Band{Label: "Low Average", Color: "FFFF66"}},
	{110, Band{Label: "Average", Color: "66B2FF"}},
	{120, Band{Label: "High Average", Color: "00CED1"}},
	{0, Band{Label: "Superior", Color: "32CD32"}},
}

// All returns the bands in display order (lowest to highest).
func All() []Band {
	result := make([]Band, len(bands))
	for i, b := range bands {
		result[i] = b.band
	}
	return result
}

// Classify maps a standard score to its performance band. The ranges are
// contiguous and cover the whole real line, so every score gets a band.
func Classify(ss float64) Band {
	for _, b := range bands[:len(bands)-1] {
		if ss < b.upper {
			return b.band
		}
	}
	return bands[len(bands)-1].band
}

// ClassifyString classifies a raw score value, returning Unavailable when
// the value does not parse as a number.
func ClassifyString(raw string) string {
	ss, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Unavailable
	}
	return Classify(ss).Label
}

// ColorFor returns the display color for a band label, or white for
// unknown labels (including the Unavailable sentinel).
func ColorFor(label string) string {
	for _, b := range bands {
		if b.band.Label == label {
			return b.band.Color
		}
	}
	return "FFFFFF"
}

// RGB decodes the band color into its red, green and blue components.
func (b Band) RGB() (r, g, bl int) {
	return hexRGB(b.Color)
}

func hexRGB(hex string) (r, g, b int) {
	if len(hex) != 6 {
		return 255, 255, 255
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 255, 255, 255
	}
	return rv, gv, bv
}
