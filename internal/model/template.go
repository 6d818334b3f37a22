package model

// Template is a read-only, system-seeded blueprint of categories and items
// that can be copied into a trip.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsSystem    bool   `json:"is_system"`
}

// TemplateCategory is an ordered category within a template.
type TemplateCategory struct {
	ID         string `json:"id"`
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
	SortOrder  int    `json:"sort_order"`
}

// TemplateItem is an item within a template category.
type TemplateItem struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// TemplateCategoryWithItems is a template category with its items.
type TemplateCategoryWithItems struct {
	TemplateCategory
	Items []TemplateItem `json:"items"`
}

// TemplateWithCategories is a full template as returned by detail reads.
type TemplateWithCategories struct {
	Template
	Categories []TemplateCategoryWithItems `json:"categories"`
}
