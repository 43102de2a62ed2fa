package notify

import (
	"fmt"
)

// Category is one kind of email the plugin sends. The ident is the stable
// lookup surface callers use; the subject may carry {EVENT_NAME} and
// {EVENT_DATE} placeholders; Requires lists context paths beyond the base set
// that the template references.
type Category struct {
	Ident    string
	Subject  string
	Template string
	// Sender overrides the configured contact address when set.
	Sender   string
	Requires []string
}

// Registry holds the registered email categories. Registration happens once
// at startup under a single writer; lookups afterward are read-only.
type Registry struct {
	categories map[string]Category
	order      []string
}

// NewRegistry creates an empty category registry.
func NewRegistry() *Registry {
	return &Registry{categories: make(map[string]Category)}
}

// Register adds a category. Idents must be unique and non-empty; a duplicate
// registration is a programming error surfaced immediately.
func (r *Registry) Register(cat Category) error {
	if cat.Ident == "" {
		return fmt.Errorf("category ident may not be empty")
	}
	if _, exists := r.categories[cat.Ident]; exists {
		return fmt.Errorf("category ident %q is registered twice", cat.Ident)
	}
	if cat.Template == "" {
		return fmt.Errorf("category %q has no template", cat.Ident)
	}
	r.categories[cat.Ident] = cat
	r.order = append(r.order, cat.Ident)
	return nil
}

// Get looks up a category by ident.
func (r *Registry) Get(ident string) (Category, bool) {
	cat, ok := r.categories[ident]
	return cat, ok
}

// List returns categories in registration order.
func (r *Registry) List() []Category {
	out := make([]Category, 0, len(r.order))
	for _, ident := range r.order {
		out = append(out, r.categories[ident])
	}
	return out
}

// DefaultRegistry returns the MIVS judging email family.
func DefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	cats := []Category{
		{
			Ident:    "mivs_judge_welcome",
			Subject:  "{EVENT_NAME} MIVS Judging Information",
			Template: "judge_welcome",
		},
		{
			Ident:    "mivs_judging_begun",
			Subject:  "{EVENT_NAME} MIVS Judging Has Begun!",
			Template: "judging_begun",
			Requires: []string{"c.MIVS_JUDGING_DEADLINE", "c.SOFT_MIVS_JUDGING_DEADLINE"},
		},
		{
			Ident:    "mivs_judging_reminder",
			Subject:  "Reminder: {EVENT_NAME} MIVS Judging Deadline Approaching",
			Template: "judging_reminder",
			Requires: []string{"c.MIVS_JUDGING_DEADLINE"},
		},
		{
			Ident:    "mivs_judging_complete",
			Subject:  "{EVENT_NAME} {EVENT_DATE} MIVS Judging Complete",
			Template: "judging_complete",
			Requires: []string{"c.EPOCH"},
		},
	}
	for _, cat := range cats {
		if err := r.Register(cat); err != nil {
			return nil, err
		}
	}
	return r, nil
}
