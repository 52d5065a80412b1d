package dictionary

import "slices"

// StatusInfo is the display projection of an approval status.
type StatusInfo struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	StatusClass string `json:"status_class"`
	Value       int    `json:"value"`
}

type bucket struct {
	color  string
	class  string
	values []int
}

// Taxonomy maps status codes to labels and color buckets. Buckets are scanned in
// order and the first one containing the code wins; the fallback bucket applies
// otherwise.
type Taxonomy struct {
	name     string
	options  IntOptions
	buckets  []bucket
	fallback bucket
}

const (
	colorApproved  = "#07c160"
	colorRejected  = "#ee0a24"
	colorApproving = "#1989fa"
	colorWithdrawn = "#ff976a"

	classApproved  = "status-approved"
	classRejected  = "status-rejected"
	classApproving = "status-approving"
	classWithdrawn = "status-withdrawn"

	// unmatched labels resolve to 审批中
	fallbackValue = 1
	fallbackLabel = "审批中"
)

var ContractStatuses = &Taxonomy{
	name:    "contract",
	options: ContractStatusOptions,
	buckets: []bucket{
		{color: colorApproved, class: classApproved, values: []int{2, 8}},
		{color: colorRejected, class: classRejected, values: []int{3, 7}},
		{color: colorApproving, class: classApproving, values: []int{1, 5, 9}},
		{color: colorWithdrawn, class: classWithdrawn, values: []int{4, 6, 10}},
	},
	fallback: bucket{color: colorApproving, class: classApproving, values: []int{0, 11, 12}},
}

// VerificationStatuses covers verification and payment orders.
var VerificationStatuses = &Taxonomy{
	name:    "verification",
	options: VerificationStatusOptions,
	buckets: []bucket{
		{color: colorApproved, class: classApproved, values: []int{2, 7}},
		{color: colorRejected, class: classRejected, values: []int{3, 8}},
		{color: colorApproving, class: classApproving, values: []int{1, 5, 6, 9, 10}},
		{color: colorWithdrawn, class: classWithdrawn, values: []int{4, 11}},
	},
	fallback: bucket{color: colorApproving, class: classApproving, values: []int{0}},
}

// TaxonomyByName returns "contract" or "verification".
func TaxonomyByName(name string) (*Taxonomy, bool) {
	switch name {
	case ContractStatuses.name:
		return ContractStatuses, true
	case VerificationStatuses.name:
		return VerificationStatuses, true
	}
	return nil, false
}

func (t *Taxonomy) Name() string { return t.name }

func (t *Taxonomy) ByCode(code int) StatusInfo {
	label := LabelOf(t.options, code)
	if label == "" {
		label = fallbackLabel
	}
	b := t.fallback
	for _, candidate := range t.buckets {
		if slices.Contains(candidate.values, code) {
			b = candidate
			break
		}
	}
	return StatusInfo{Label: label, Color: b.color, StatusClass: b.class, Value: code}
}

func (t *Taxonomy) ByLabel(label string) StatusInfo {
	for _, opt := range t.options {
		if opt.Label == label {
			return t.ByCode(opt.Value)
		}
	}
	return t.ByCode(fallbackValue)
}

// ByCodePtr treats a missing status as 0.
func (t *Taxonomy) ByCodePtr(code *int) StatusInfo {
	if code == nil {
		return t.ByCode(0)
	}
	return t.ByCode(*code)
}
