// Package relpath parses dotted relation requests ("user.friend") into a tree
// keyed by the first segment.
package relpath

import "strings"

// DefaultSeparator splits a path into its relation segments.
const DefaultSeparator = "."

// Node is one requested relation and the paths to request on the entities it
// points to.
type Node struct {
	Name  string
	Paths []string
}

// Parse groups paths by their first segment, in order of first appearance.
// Each remaining segment becomes its own request on the related entity, so
// "user.friend.tag" requests both "friend" and "tag" on the user.
//
//	Parse([]string{"user.friend", "user.family"}, ".")
//	// [{Name: "user", Paths: ["friend", "family"]}]
func Parse(paths []string, separator string) []Node {
	if separator == "" {
		separator = DefaultSeparator
	}

	nodes := make([]Node, 0, len(paths))
	index := make(map[string]int, len(paths))

	for _, path := range paths {
		name, rest, nested := strings.Cut(path, separator)

		i, seen := index[name]
		if !seen {
			i = len(nodes)
			index[name] = i
			nodes = append(nodes, Node{Name: name, Paths: []string{}})
		}

		if nested {
			nodes[i].Paths = append(nodes[i].Paths, strings.Split(rest, separator)...)
		}
	}

	return nodes
}
