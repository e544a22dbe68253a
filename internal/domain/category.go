package domain

import (
	"context"
	"encoding/json"
	"strings"
)

type Category struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	CreateCategory(ctx context.Context, category *Category) (*Category, error)
	UpdateCategory(ctx context.Context, id string, category *Category) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryForm struct {
	Name string `form:"name"`
}

func CategoryFormFrom(c *Category) CategoryForm {
	return CategoryForm{Name: c.Name}
}

func (f CategoryForm) Parse() (*Category, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, ValidationErrors{{Field: "name", Message: MsgCategoryNameRequired}}
	}
	return &Category{Name: name}, nil
}

// CategoryRefs is the product's category field. The API returns either ids or populated categories.
type CategoryRefs []string

func (r *CategoryRefs) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		// a single reference
		var one json.RawMessage
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		if string(one) == "null" {
			*r = nil
			return nil
		}
		raw = []json.RawMessage{one}
	}
	refs := make(CategoryRefs, 0, len(raw))
	for _, item := range raw {
		var id string
		if err := json.Unmarshal(item, &id); err == nil {
			refs = append(refs, id)
			continue
		}
		var c Category
		if err := json.Unmarshal(item, &c); err != nil {
			return err
		}
		refs = append(refs, c.ID)
	}
	*r = refs
	return nil
}

func (r CategoryRefs) First() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}
