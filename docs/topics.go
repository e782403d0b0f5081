// Package docs embeds the user documentation of nw, one markdown file per
// topic. The Index lists the topics and is not one of them.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the name of the page listing the topics.
const Index = "readme"

// Names returns the topic names, sorted.
func Names() []string {
	matches, _ := fs.Glob(files, "*.md") // the pattern is valid
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if name := strings.TrimSuffix(m, ".md"); name != Index {
			names = append(names, name)
		}
	}
	return names
}

// Topic returns the markdown of a topic, or of every topic for "*".
func Topic(name string) (string, error) {
	if name == "*" {
		return Topics(Names()...)
	}
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, run \"nw topic\" for the list: %w", name, err)
	}
	return string(content), nil
}

// Topics returns the markdown of several topics, one after the other.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
