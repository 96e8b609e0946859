package entity

// ConfigKeyInfo documents one configuration key for `dumbed config keys`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "layout.default_side".
	Key  string `json:"key"`
	Type string `json:"type"`
	// Default is rendered as text regardless of Type.
	Default     string `json:"default"`
	Description string `json:"description"`
	// Values lists the accepted enum values, if any.
	Values []string `json:"values,omitempty"`
	// Range describes numeric bounds such as "1-1000".
	Range   string `json:"range,omitempty"`
	Section string `json:"section"`
}
