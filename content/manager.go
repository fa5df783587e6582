package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

const (
	// SectionPattern selects the markdown files that become page sections
	SectionPattern = "sections/**/*.md"
	ProfileFile    = "profile.yaml"

	// Avatar size in cells
	AvatarCols = 16
	AvatarRows = 8
)

//go:embed default
var defaultFS embed.FS

// Manager discovers and loads portfolio content from a filesystem
type Manager struct {
	fsys  fs.FS
	files []string
}

// NewManager creates a manager over fsys
func NewManager(fsys fs.FS) *Manager {
	return &Manager{fsys: fsys}
}

// NewDefaultManager creates a manager over the built-in content
func NewDefaultManager() *Manager {
	sub, err := fs.Sub(defaultFS, "default")
	if err != nil {
		panic(fmt.Sprintf("content: embedded defaults: %v", err))
	}
	return NewManager(sub)
}

// NewDirManager creates a manager over dir, or the built-in content when dir is empty
func NewDirManager(dir string) *Manager {
	if dir == "" {
		return NewDefaultManager()
	}
	return NewManager(os.DirFS(dir))
}

// DiscoverSectionFiles finds section markdown files in path order, skipping hidden files
func (m *Manager) DiscoverSectionFiles() error {
	matches, err := doublestar.Glob(m.fsys, SectionPattern)
	if err != nil {
		return fmt.Errorf("discover sections: %w", err)
	}

	m.files = m.files[:0]
	for _, p := range matches {
		if strings.HasPrefix(path.Base(p), ".") {
			slog.Debug("skipping hidden section file", "path", p)
			continue
		}
		m.files = append(m.files, p)
	}
	sort.Strings(m.files)

	slog.Debug("discovered section files", "count", len(m.files))
	return nil
}

// SectionFiles returns the discovered section files
func (m *Manager) SectionFiles() []string {
	return m.files
}

// LoadProfile reads profile.yaml; a missing file yields an empty profile
func (m *Manager) LoadProfile() (Profile, error) {
	var p Profile
	data, err := fs.ReadFile(m.fsys, ProfileFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no profile manifest", "file", ProfileFile)
			return p, nil
		}
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse %s: %w", ProfileFile, err)
	}
	for i, r := range p.Roles {
		p.Roles[i] = sanitizeLine(r)
	}
	p.Name = sanitizeLine(p.Name)
	p.Tagline = sanitizeLine(p.Tagline)
	p.RolePrefix = strings.TrimLeft(stripControl(p.RolePrefix), " ")
	p.Footer = sanitizeLine(p.Footer)
	return p, nil
}

// Load reads the profile and every section into a document
// An unreadable avatar is logged and left nil so the page falls back to initials
func (m *Manager) Load() (*Document, error) {
	if err := m.DiscoverSectionFiles(); err != nil {
		return nil, err
	}

	profile, err := m.LoadProfile()
	if err != nil {
		return nil, err
	}
	doc := &Document{Profile: profile}

	for _, p := range m.files {
		src, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read section %s: %w", p, err)
		}
		sec, err := ParseSection(SectionID(p), src)
		if err != nil {
			return nil, fmt.Errorf("parse section %s: %w", p, err)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if profile.Avatar != "" {
		avatar, err := LoadAvatar(m.fsys, profile.Avatar, AvatarCols, AvatarRows)
		if err != nil {
			slog.Warn("profile image unavailable, using initials", "error", err)
		} else {
			doc.Avatar = avatar
		}
	}
	return doc, nil
}

// SectionID derives the section anchor from a file path: "sections/02-projects.md" is "projects"
func SectionID(p string) string {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if i := strings.IndexByte(name, '-'); i > 0 && isDigits(name[:i]) {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
