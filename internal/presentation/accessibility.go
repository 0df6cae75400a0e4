package presentation

import "studypilot/internal/domain/models"

const (
	MarkerReduceMotion = "reduce-motion"
	MarkerHighContrast = "high-contrast"
	fontSizePrefix     = "font-size-"
)

// FontSizeMarker returns the marker for a font size, e.g. "font-size-large".
func FontSizeMarker(size models.FontSize) string {
	return fontSizePrefix + string(size)
}

// FontSizeMarkers returns the markers of every supported font size.
func FontSizeMarkers() []string {
	out := make([]string, len(models.FontSizes))
	for i, s := range models.FontSizes {
		out[i] = FontSizeMarker(s)
	}
	return out
}

// ApplyAccessibility synchronizes root with settings: exactly one font size
// marker, reduce-motion iff ReducedMotion, high-contrast iff HighContrast.
// Applying the same settings twice leaves the same marker set.
func ApplyAccessibility(root ClassList, settings models.AccessibilitySettings) {
	root.Remove(FontSizeMarkers()...)
	size := settings.FontSize
	if !size.Valid() {
		size = models.FontSizeMedium
	}
	root.Add(FontSizeMarker(size))
	root.Toggle(MarkerReduceMotion, settings.ReducedMotion)
	root.Toggle(MarkerHighContrast, settings.HighContrast)
}

// AccessibilityEffect binds ApplyAccessibility to root.
func AccessibilityEffect(root ClassList) func(models.AccessibilitySettings) {
	return func(s models.AccessibilitySettings) {
		ApplyAccessibility(root, s)
	}
}
