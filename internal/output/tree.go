package output

import (
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

const (
	// statusColumn is the display column, counted from the start of the
	// line, where file statuses begin.
	statusColumn = 36

	// indentWidth is the width of one tree level: the enumerator plus its
	// padding.
	indentWidth = 4
)

type fileNode struct {
	status   string
	children map[string]*fileNode
}

func (n *fileNode) isDir() bool {
	return n.children != nil
}

// RenderFileTree renders the touched files under rootName as a tree with
// color-coded statuses aligned in one column. Files maps slash-separated
// relative paths to their status.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &fileNode{children: map[string]*fileNode{}}
	for p, status := range files {
		parts := strings.Split(path.Clean(strings.ReplaceAll(p, `\`, "/")), "/")
		current := root
		for i, part := range parts {
			child, ok := current.children[part]
			if !ok {
				child = &fileNode{}
				if i < len(parts)-1 {
					child.children = map[string]*fileNode{}
				}
				current.children[part] = child
			}
			if i == len(parts)-1 {
				child.status = status
			}
			current = child
		}
	}

	t := tree.Root(StyleSummary.Render(rootName + "/")).
		EnumeratorStyle(StyleDim.PaddingRight(1))
	addChildren(t, root, 1)
	return t.String()
}

// addChildren appends the children of node to t, directories first and then
// by name.
func addChildren(t *tree.Tree, node *fileNode, depth int) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := node.children[names[i]], node.children[names[j]]
		if a.isDir() != b.isDir() {
			return a.isDir()
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		child := node.children[name]
		if child.isDir() {
			sub := tree.Root(StyleNoun.Render(name + "/"))
			addChildren(sub, child, depth+1)
			t.Child(sub)
			continue
		}
		t.Child(fileLabel(name, child.status, depth))
	}
}

// fileLabel pads name so that status starts at statusColumn for an entry
// nested depth levels below the root.
func fileLabel(name, status string, depth int) string {
	padding := statusColumn - depth*indentWidth - lipgloss.Width(name)
	if padding < 2 {
		padding = 2
	}
	return name + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}
