package content

// FieldType identifies how a repository field stores its value.
type FieldType string

const (
	FieldString   FieldType = "string"
	FieldText     FieldType = "text"
	FieldInteger  FieldType = "integer"
	FieldFloat    FieldType = "float"
	FieldRichText FieldType = "rich_text"
	FieldLink     FieldType = "link"
	FieldLinks    FieldType = "links"
	FieldSeo      FieldType = "seo"
	FieldFile     FieldType = "file"
	FieldImage    FieldType = "image"
)

// IsReference reports whether the field type carries record ids instead of
// inline content. Link fields hold a single id; links and rich_text fields
// hold an ordered id list.
func (t FieldType) IsReference() bool {
	switch t {
	case FieldLink, FieldLinks, FieldRichText:
		return true
	}
	return false
}

// Model describes one content type as configured in the repository.
// Models are assembled once per run from repository metadata and read-only
// afterwards.
type Model struct {
	ID                 string
	Name               string
	APIKey             string
	Hint               string
	AllLocalesRequired bool
	ModularBlock       bool
	Fields             []Field
	// FieldsReference holds the ordered field ids actually present on this
	// model; walking it preserves the editor-visible field order.
	FieldsReference []string
}

// Translatable reports whether records of this model are exported as
// top-level translation records. Modular blocks are only reachable through
// their parents.
func (m Model) Translatable() bool {
	return m.AllLocalesRequired && !m.ModularBlock
}

// FieldByID returns the field definition with the given id.
func (m Model) FieldByID(id string) (Field, bool) {
	for _, f := range m.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// FieldByAPIKey returns the field definition with the given snake_case api key.
func (m Model) FieldByAPIKey(apiKey string) (Field, bool) {
	for _, f := range m.Fields {
		if f.APIKey == apiKey {
			return f, true
		}
	}
	return Field{}, false
}

// ModelSet indexes models by id for the graph walks.
type ModelSet map[string]Model

// NewModelSet builds an id-keyed index from a model list.
func NewModelSet(models []Model) ModelSet {
	set := make(ModelSet, len(models))
	for _, m := range models {
		set[m.ID] = m
	}
	return set
}

// Field describes one field definition on a model.
type Field struct {
	ID         string
	APIKey     string
	FieldType  FieldType
	Localized  bool
	Hint       string
	Validators Validators
}

// Validators carries the field-type-specific constraints the engine cares
// about. Everything else the repository configures is ignored here.
type Validators struct {
	// Enum lists the allowed values for enum-restricted string fields.
	Enum []string
	// TitleLength and DescriptionLength bound SEO sub-fields; zero means
	// unbounded.
	TitleLength       int
	DescriptionLength int
}

// EnumRestricted reports whether a string field only accepts an enumerated
// value set. Those values are configuration, not prose.
func (v Validators) EnumRestricted() bool {
	return len(v.Enum) > 0
}
