package gedcom

// Header is the single HEAD record of a file. It carries no derived fields;
// its subtree is kept intact for reconstitution.
type Header struct {
	*Element
}

// NewHeader wraps an already-built top-level element as the file header.
func NewHeader(el *Element) *Header {
	return &Header{Element: el}
}

// Data returns the header's semantic fields.
func (h *Header) Data() map[string]any {
	return map[string]any{}
}

// Source is a top-level SOUR record.
type Source struct {
	*Element
}

// NewSource wraps an already-built top-level element as a source.
func NewSource(el *Element) *Source {
	return &Source{Element: el}
}

// Data returns the source's semantic fields.
func (s *Source) Data() map[string]any {
	return map[string]any{}
}

// Object is a top-level OBJE record.
type Object struct {
	*Element
}

// NewObject wraps an already-built top-level element as a media object.
func NewObject(el *Element) *Object {
	return &Object{Element: el}
}

// Data returns the object's semantic fields.
func (o *Object) Data() map[string]any {
	return map[string]any{}
}

// Repository is a top-level REPO record.
// TODO: derive repository fields (NAME, ADDR) from its children.
type Repository struct {
	*Element
}

// NewRepository wraps an already-built top-level element as a repository.
func NewRepository(el *Element) *Repository {
	return &Repository{Element: el}
}

// Data returns the repository's semantic fields.
func (r *Repository) Data() map[string]any {
	return map[string]any{}
}
