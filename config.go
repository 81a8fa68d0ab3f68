package justext

// Config holds the thresholds used by classification and revision.
type Config struct {
	// LengthLow is the character count below which a paragraph cannot be
	// classified as Good on its own.
	LengthLow int `json:"lengthLow"`

	// LengthHigh is the character count above which a stopword-dense
	// paragraph is Good rather than NearGood.
	LengthHigh int `json:"lengthHigh"`

	// StopwordsLow is the minimum stopword density for NearGood.
	StopwordsLow float64 `json:"stopwordsLow"`

	// StopwordsHigh is the minimum stopword density for Good.
	StopwordsHigh float64 `json:"stopwordsHigh"`

	// MaxLinkDensity is the link density above which a paragraph is Bad
	// regardless of anything else.
	MaxLinkDensity float64 `json:"maxLinkDensity"`

	// MaxHeadingDistance is how many characters of following text may
	// separate a short heading from Good content for the heading to be
	// kept.
	MaxHeadingDistance int `json:"maxHeadingDistance"`

	// NoHeadings disables the special treatment of headings.
	NoHeadings bool `json:"noHeadings"`
}

// DefaultConfig returns the standard jusText thresholds.
func DefaultConfig() Config {
	return Config{
		LengthLow:          70,
		LengthHigh:         200,
		StopwordsLow:       0.30,
		StopwordsHigh:      0.32,
		MaxLinkDensity:     0.2,
		MaxHeadingDistance: 200,
	}
}

// Validate returns an error if the config contains invalid thresholds.
func (c Config) Validate() error {
	if c.LengthLow < 0 || c.LengthHigh < c.LengthLow {
		return Errorf(EINVALID, "length thresholds must satisfy 0 <= low <= high")
	}
	if c.StopwordsLow < 0 || c.StopwordsLow > 1 || c.StopwordsHigh < c.StopwordsLow || c.StopwordsHigh > 1 {
		return Errorf(EINVALID, "stopword thresholds must satisfy 0 <= low <= high <= 1")
	}
	if c.MaxLinkDensity < 0 {
		return Errorf(EINVALID, "max link density must not be negative")
	}
	if c.MaxHeadingDistance < 0 {
		return Errorf(EINVALID, "max heading distance must not be negative")
	}
	return nil
}
