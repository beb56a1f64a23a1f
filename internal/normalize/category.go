package normalize

import (
	"strings"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
)

const (
	DefaultCategoryName  = "Unnamed"
	DefaultCategoryColor = "#9d9dba"
	DefaultCategoryIcon  = "📌"
)

// Category parses a category. The owner is kept as given, categories
// without one are global.
func Category(raw map[string]any) Result[models.Category] {
	if raw == nil {
		return failure[models.Category]("", "category is empty")
	}

	var r Result[models.Category]
	c := &r.Value

	fallback := func(name string, value *string, def string, keys ...string) {
		s, _ := text(raw, keys...)
		s = strings.TrimSpace(s)
		if s == "" {
			r.Defaulted = append(r.Defaulted, name)
			s = def
		}
		*value = s
	}

	fallback("name", &c.Name, DefaultCategoryName, "name")
	fallback("color", &c.Color, DefaultCategoryColor, "color")
	fallback("icon", &c.Icon, DefaultCategoryIcon, "icon")
	fallback("id", &c.ID, "", "id")
	if c.ID == "" {
		c.ID = NewID()
	}

	typ, _ := field(raw, "type")
	entryType, ok := EntryType(typ)
	if !ok {
		r.Defaulted = append(r.Defaulted, "type")
	}
	c.Type = entryType

	if owner, ok := text(raw, "userId", "user_id"); ok && owner != "" {
		c.UserID = &owner
	}

	return r
}

// Categories parses a list of categories.
func Categories(list []map[string]any) ([]models.Category, []Failure) {
	return all(list, Category)
}
