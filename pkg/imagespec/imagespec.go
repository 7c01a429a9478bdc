// Package imagespec parses the serialized image list that tells a run
// what to mirror.
//
// The grammar is deliberately strict: the spec string is split into
// whitespace-separated entries, each entry must contain exactly one "=",
// and the right-hand side is a comma-separated, non-empty list of tags.
// Anything else is rejected rather than guessed at.
package imagespec

import (
	"strings"

	"github.com/anchorline/ecrmirror/pkg/errors"
)

// Entry maps one image reference to the tags mirrored for it.
type Entry struct {
	// Image is a registry-relative path such as "elastic-agent/elastic-agent".
	Image string
	// Tags in declaration order.
	Tags []string
}

// Parse parses a spec string such as
//
//	"elastic/elastic-agent=8.10.0 myapp/worker=1.2.0,1.3.0"
//
// into ordered entries. Image references must be unique within a spec.
func Parse(spec string) ([]Entry, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, errors.Parse("image spec is empty")
	}

	entries := make([]Entry, 0, len(fields))
	seen := make(map[string]bool, len(fields))

	for _, field := range fields {
		if strings.Count(field, "=") != 1 {
			return nil, errors.Parse("entry %q must have the form image=tag1,tag2,...", field)
		}
		image, tagList, _ := strings.Cut(field, "=")
		if image == "" {
			return nil, errors.Parse("entry %q has an empty image reference", field)
		}
		if seen[image] {
			return nil, errors.Parse("image %q is listed more than once", image)
		}
		seen[image] = true

		var tags []string
		for _, tag := range strings.Split(tagList, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				return nil, errors.Parse("entry %q has an empty tag", field)
			}
			tags = append(tags, tag)
		}

		entries = append(entries, Entry{Image: image, Tags: tags})
	}

	return entries, nil
}
