package domain

import "strings"

// Tag is a free-form user label. User-created tags are self-identifying:
// the id equals the label.
type Tag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TagSet tracks the tags known in this session and the subset currently
// applied to the form. The known set is append-only until replaced by a
// remote refresh; the selection keeps insertion order.
type TagSet struct {
	known    []Tag
	selected []Tag
}

func NewTagSet() *TagSet {
	return &TagSet{}
}

// AddFromInput trims the raw text and applies it as a tag. Empty input is
// a no-op. An exact case-sensitive label match reuses the known tag;
// otherwise a new tag with id == label joins the known set. Adding an
// already-selected label leaves the selection unchanged.
func (t *TagSet) AddFromInput(raw string) {
	label := strings.TrimSpace(raw)
	if label == "" {
		return
	}

	tag, known := t.lookup(label)
	if !known {
		tag = Tag{ID: label, Label: label}
		t.known = append(t.known, tag)
	}

	for _, selected := range t.selected {
		if selected.Label == tag.Label {
			return
		}
	}
	t.selected = append(t.selected, tag)
}

// Remove drops the tag from the selection only; the known set keeps it.
func (t *TagSet) Remove(tagID string) {
	for i, selected := range t.selected {
		if selected.ID == tagID {
			t.selected = append(t.selected[:i], t.selected[i+1:]...)
			return
		}
	}
}

// LoadKnownTags replaces the known set, e.g. from a remote fetch. The
// current selection is untouched.
func (t *TagSet) LoadKnownTags(tags []Tag) {
	t.known = append([]Tag(nil), tags...)
}

func (t *TagSet) Selected() []Tag {
	return append([]Tag(nil), t.selected...)
}

func (t *TagSet) Known() []Tag {
	return append([]Tag(nil), t.known...)
}

func (t *TagSet) ClearSelection() {
	t.selected = nil
}

func (t *TagSet) lookup(label string) (Tag, bool) {
	for _, known := range t.known {
		if known.Label == label {
			return known, true
		}
	}
	return Tag{}, false
}
