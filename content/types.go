package content

// BlockKind distinguishes how a block is laid out
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockList
	BlockCode
	BlockHeading
	BlockCard
)

// Block is one laid-out unit of a section; Lines are logical lines, wrapped at layout time
type Block struct {
	Kind  BlockKind
	Title string
	Lines []string
	Link  string
}

// Section is one page section parsed from a markdown file
type Section struct {
	ID     string
	Title  string
	Blocks []Block
}

// Cards returns the card blocks of the section
func (s *Section) Cards() []Block {
	var cards []Block
	for _, b := range s.Blocks {
		if b.Kind == BlockCard {
			cards = append(cards, b)
		}
	}
	return cards
}

// Social is a profile link shown as an icon in the hero and footer
type Social struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	URL   string `yaml:"url"`
}

// Profile is the portfolio owner manifest, read from profile.yaml
type Profile struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	// RolePrefix is the fixed text typed roles follow, "Data " in "Data Scientist"
	RolePrefix string   `yaml:"role_prefix"`
	Roles      []string `yaml:"roles"`
	Email      string   `yaml:"email"`
	Avatar     string   `yaml:"avatar"`
	Footer     string   `yaml:"footer"`
	Socials    []Social `yaml:"socials"`
}

// Document is the whole portfolio: profile plus ordered sections
type Document struct {
	Profile  Profile
	Sections []Section

	// Avatar is nil when the profile image is missing or unreadable
	Avatar *Avatar
}

// Section returns the section with the given id
func (d *Document) Section(id string) (*Section, bool) {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i], true
		}
	}
	return nil, false
}
