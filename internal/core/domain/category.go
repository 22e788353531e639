package domain

// DefaultTaxonomy is the static two-level classification the remote
// document-management API understands.
var DefaultTaxonomy = map[string][]string{
	"Personal":     {"John", "Tom", "Emily"},
	"Professional": {"Accounts", "HR", "IT", "Finance"},
}

// Category is the (major, minor) classification attached to a document.
// An empty MinorLabel means no subcategory is selected.
type Category struct {
	MajorLabel string
	MinorLabel string
}

func (c Category) IsComplete() bool {
	return c.MajorLabel != "" && c.MinorLabel != ""
}

// CategorySelector holds the cascading major/minor selection of one form.
// Changing the major label always invalidates the minor selection, so a
// stale subcategory can never leak into a query or submission.
type CategorySelector struct {
	taxonomy map[string][]string
	major    string
	minor    string
	options  []string
}

func NewCategorySelector(taxonomy map[string][]string) *CategorySelector {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy
	}
	return &CategorySelector{taxonomy: taxonomy}
}

// SetMajor replaces the major label, drops the minor selection and
// recomputes the valid minor options. Unknown labels yield an empty
// option set.
func (s *CategorySelector) SetMajor(label string) {
	s.major = label
	s.minor = ""
	s.options = append([]string(nil), s.taxonomy[label]...)
}

// SetMinor reports whether the label was accepted. Labels outside the
// current option set are rejected without changing state.
func (s *CategorySelector) SetMinor(label string) bool {
	for _, option := range s.options {
		if option == label {
			s.minor = label
			return true
		}
	}
	return false
}

func (s *CategorySelector) MinorOptions() []string {
	return append([]string(nil), s.options...)
}

// IsComplete gates submission: both levels must be selected.
func (s *CategorySelector) IsComplete() bool {
	return s.major != "" && s.minor != ""
}

func (s *CategorySelector) Category() Category {
	return Category{MajorLabel: s.major, MinorLabel: s.minor}
}

func (s *CategorySelector) Reset() {
	s.major = ""
	s.minor = ""
	s.options = nil
}
