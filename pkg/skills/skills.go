package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skill is one loaded skill definition: frontmatter metadata plus the
// markdown body that follows it.
type Skill struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Version     string   `yaml:"version"`
	Tags        []string `yaml:"tags"`
	Body        string   `yaml:"-"`
}

const fence = "---"

// Parse extracts a skill from raw file content. The content must begin with
// a fenced YAML frontmatter block declaring at least a name.
func Parse(content []byte) (Skill, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	if !strings.HasPrefix(text, fence+"\n") {
		return Skill{}, ErrNoFrontmatter
	}

	rest := text[len(fence)+1:]
	end := strings.Index(rest, "\n"+fence)
	if end < 0 {
		return Skill{}, ErrUnclosedFrontmatter
	}

	meta := rest[:end+1]
	body := rest[end+1+len(fence):]
	if after, ok := strings.CutPrefix(body, "\n"); ok {
		body = after
	}

	var s Skill
	if err := yaml.Unmarshal([]byte(meta), &s); err != nil {
		return Skill{}, fmt.Errorf("skills: parse frontmatter: %w", err)
	}
	if strings.TrimSpace(s.Name) == "" {
		return Skill{}, ErrMissingName
	}

	s.Body = strings.TrimSpace(body)
	return s, nil
}

// Load reads and parses one skill file.
func Load(path string) (Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Skill{}, fmt.Errorf("skills: read %s: %w", path, err)
	}
	s, err := Parse(content)
	if err != nil {
		return Skill{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return s, nil
}

// LoadDir loads every .md file in dir (non-recursive) and returns the
// skills sorted by name. Subdirectories and non-markdown files are skipped.
func LoadDir(dir string) ([]Skill, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("skills: read dir %s: %w", dir, err)
	}

	var out []Skill
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		s, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
