package csvsource

// Option applies a configuration option to the reader.
type Option func(*reader)

// WithAnonymizedNames replaces every athlete name with its SHA-256 digest.
func WithAnonymizedNames() Option {
	return func(r *reader) {
		r.anonymize = true
	}
}

// WithMissingMarker sets the cell value treated as a missing value.
func WithMissingMarker(marker string) Option {
	return func(r *reader) {
		if marker != "" {
			r.missing = marker
		}
	}
}

// WithComma sets the field delimiter.
func WithComma(comma rune) Option {
	return func(r *reader) {
		if comma != 0 {
			r.comma = comma
		}
	}
}
