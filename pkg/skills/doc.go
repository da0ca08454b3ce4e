// Package skills loads skill definitions from markdown files with YAML
// frontmatter. A skill file pairs structured metadata (name, description,
// version, tags) with a free-form markdown body that downstream products
// interpret.
//
// A valid skill file looks like:
//
//	---
//	name: cohort-demographics
//	description: Generates demographic summaries for a cohort.
//	version: 1.0.0
//	tags: [demographics, reporting]
//	---
//
//	# Cohort demographics
//	...instructions...
//
// # Usage
//
//	s, err := skills.Load("skills/demographics.md")
//	all, err := skills.LoadDir("skills")
//
// LoadDir skips non-markdown entries and returns skills sorted by name so
// catalogs render deterministically.
package skills
