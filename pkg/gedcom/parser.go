package gedcom

import "strings"

// Top-level record tags dispatched by the parser. Any other level-0 tag is
// silently dropped.
const (
	TagHeader     = "HEAD"
	TagIndividual = "INDI"
	TagFamily     = "FAM"
	TagSource     = "SOUR"
	TagRepository = "REPO"
	TagObject     = "OBJE"
	TagTrailer    = "TRLR"
)

// Parser assembles a GEDCOM line stream into top-level record collections.
//
// A Parser owns its collections exclusively; Parse resets them before each
// pass, so re-parsing the same source yields the same result. Parsers are
// not safe for concurrent mutation.
type Parser struct {
	Head         *Header
	Individuals  []*Individual
	Families     []*Family
	Sources      []*Source
	Objects      []*Object
	Repositories []*Repository
}

// NewParser creates an empty parser.
func NewParser() *Parser {
	return &Parser{}
}

// Stats summarizes the parsed collections.
type Stats struct {
	Head         bool `json:"head" bson:"head"`
	Individuals  int  `json:"individuals" bson:"individuals"`
	Families     int  `json:"families" bson:"families"`
	Sources      int  `json:"sources" bson:"sources"`
	Objects      int  `json:"objects" bson:"objects"`
	Repositories int  `json:"repositories" bson:"repositories"`
}

// Parse builds the record collections from raw GEDCOM text. Prior state is
// discarded first. Blank lines are skipped. Each level-0 line opens a new
// top-level group and finalizes the previous one; the intervening deeper
// lines become the group's child buffer, partitioned recursively by
// [NewElement] when the record is constructed.
//
// Parse does not enforce level consistency; call [Verify] first for strict
// structural validation. A malformed line aborts the whole pass.
func (p *Parser) Parse(data string) error {
	p.reset()

	var current *Line
	var buffer []string
	for _, raw := range strings.Split(data, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line, err := ParseLine(raw)
		if err != nil {
			return err
		}
		if line.Level > 0 {
			buffer = append(buffer, raw)
			continue
		}
		if current != nil {
			if err := p.createRecord(*current, buffer); err != nil {
				return err
			}
		}
		current = &line
		buffer = nil
	}
	if current != nil {
		if err := p.createRecord(*current, buffer); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) reset() {
	p.Head = nil
	p.Individuals = nil
	p.Families = nil
	p.Sources = nil
	p.Objects = nil
	p.Repositories = nil
}

// createRecord dispatches a finished top-level group to its constructor.
// Unrecognized tags (including TRLR) are dropped.
func (p *Parser) createRecord(line Line, buffer []string) error {
	if line.Tag == TagHeader {
		// HEAD never carries an xref.
		line.XRef = ""
	}
	switch line.Tag {
	case TagHeader, TagIndividual, TagFamily, TagSource, TagRepository, TagObject:
	default:
		return nil
	}

	el, err := NewElement(line.Level, line.XRef, line.Tag, line.Value, buffer)
	if err != nil {
		return err
	}

	switch line.Tag {
	case TagHeader:
		p.Head = NewHeader(el)
	case TagIndividual:
		p.Individuals = append(p.Individuals, NewIndividual(el))
	case TagFamily:
		p.Families = append(p.Families, NewFamily(el))
	case TagSource:
		p.Sources = append(p.Sources, NewSource(el))
	case TagRepository:
		p.Repositories = append(p.Repositories, NewRepository(el))
	case TagObject:
		p.Objects = append(p.Objects, NewObject(el))
	}
	return nil
}

// Stats reports per-collection counts and whether a header was found.
func (p *Parser) Stats() Stats {
	return Stats{
		Head:         p.Head != nil,
		Individuals:  len(p.Individuals),
		Families:     len(p.Families),
		Sources:      len(p.Sources),
		Objects:      len(p.Objects),
		Repositories: len(p.Repositories),
	}
}

// FindIndividual returns the individual with the given xref, or nil.
func (p *Parser) FindIndividual(xref string) *Individual {
	for _, ind := range p.Individuals {
		if ind.XRef == xref {
			return ind
		}
	}
	return nil
}

// FindFamily returns the family with the given xref, or nil.
func (p *Parser) FindFamily(xref string) *Family {
	for _, fam := range p.Families {
		if fam.XRef == xref {
			return fam
		}
	}
	return nil
}

// FindSource returns the source with the given xref, or nil.
func (p *Parser) FindSource(xref string) *Source {
	for _, src := range p.Sources {
		if src.XRef == xref {
			return src
		}
	}
	return nil
}

// FindObject returns the media object with the given xref, or nil.
func (p *Parser) FindObject(xref string) *Object {
	for _, obj := range p.Objects {
		if obj.XRef == xref {
			return obj
		}
	}
	return nil
}

// FindRepository returns the repository with the given xref, or nil.
func (p *Parser) FindRepository(xref string) *Repository {
	for _, repo := range p.Repositories {
		if repo.XRef == xref {
			return repo
		}
	}
	return nil
}

// Parents returns the resolved parents of an individual, scanning every
// family for membership in its children references. Unresolved parent
// references are dropped from the result.
func (p *Parser) Parents(ind *Individual) []*Individual {
	var out []*Individual
	for _, fam := range p.Families {
		if !fam.HasChild(ind.XRef) {
			continue
		}
		for _, ref := range fam.Parents() {
			if parent := p.FindIndividual(ref); parent != nil {
				out = append(out, parent)
			}
		}
	}
	return out
}

// Children returns the resolved children of an individual, scanning every
// family where the individual appears as husband or wife. Unresolved child
// references are dropped from the result.
func (p *Parser) Children(ind *Individual) []*Individual {
	var out []*Individual
	for _, fam := range p.Families {
		if fam.Husband != ind.XRef && fam.Wife != ind.XRef {
			continue
		}
		for _, ref := range fam.Children {
			if child := p.FindIndividual(ref); child != nil {
				out = append(out, child)
			}
		}
	}
	return out
}

// RemoveIndividual detaches the individual with the given xref from its
// collection and blanks the husband or wife reference of every family that
// pointed at it. Children references and all other fields are untouched; the
// raw element tree is left as parsed, so gedcom reconstitution still carries
// the original lines.
func (p *Parser) RemoveIndividual(xref string) {
	for i, ind := range p.Individuals {
		if ind.XRef == xref {
			p.Individuals = append(p.Individuals[:i], p.Individuals[i+1:]...)
			break
		}
	}
	for _, fam := range p.Families {
		if fam.Husband == xref {
			fam.Husband = ""
		}
		if fam.Wife == xref {
			fam.Wife = ""
		}
	}
}
