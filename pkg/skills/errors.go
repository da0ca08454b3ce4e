package skills

import "errors"

var (
	// ErrNoFrontmatter is returned when a skill file does not start with a
	// "---" fenced YAML block.
	ErrNoFrontmatter = errors.New("skills: missing yaml frontmatter")

	// ErrUnclosedFrontmatter is returned when the opening fence is never
	// closed.
	ErrUnclosedFrontmatter = errors.New("skills: unclosed yaml frontmatter")

	// ErrMissingName is returned when the frontmatter lacks the required
	// name field.
	ErrMissingName = errors.New("skills: skill name is required")
)
