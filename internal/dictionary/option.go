// Package dictionary resolves reference data into option lists, caches them for the
// life of the process, and holds the static code tables and status taxonomies.
package dictionary

// Option is a dropdown entry. Value is typed so a lookup only matches codes of the
// same kind: employee ids are int64, most codes are strings.
type Option[V comparable] struct {
	Label    string         `json:"label"`
	Value    V              `json:"value"`
	Disabled bool           `json:"disabled,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
}

// LabelOf returns the label of the first option whose value equals v, or "" when
// there is none.
func LabelOf[V comparable](options []Option[V], v V) string {
	for _, opt := range options {
		if opt.Value == v {
			return opt.Label
		}
	}
	return ""
}

// LabelOfPtr is LabelOf for optional values; nil never matches.
func LabelOfPtr[V comparable](options []Option[V], v *V) string {
	if v == nil {
		return ""
	}
	return LabelOf(options, *v)
}
