package domain

type Category string

const (
	CategoryBusiness  Category = "business"
	CategoryPersonal  Category = "personal"
	CategoryMarketing Category = "marketing"
	CategorySupport   Category = "support"
	CategorySales     Category = "sales"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryBusiness,
	CategoryPersonal,
	CategoryMarketing,
	CategorySupport,
	CategorySales,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

type VariableKind string

const (
	KindText        VariableKind = "text"
	KindTextarea    VariableKind = "textarea"
	KindSelect      VariableKind = "select"
	KindMultiSelect VariableKind = "multiselect"
	KindNumber      VariableKind = "number"
)

// Valid reports whether k is one of the known variable kinds.
func (k VariableKind) Valid() bool {
	switch k {
	case KindText, KindTextarea, KindSelect, KindMultiSelect, KindNumber:
		return true
	default:
		return false
	}
}

// HasOptions reports whether the kind draws its value from an option list.
func (k VariableKind) HasOptions() bool {
	return k == KindSelect || k == KindMultiSelect
}

type GenerationSource string

const (
	SourceLLM      GenerationSource = "llm"
	SourceFallback GenerationSource = "fallback"
)
