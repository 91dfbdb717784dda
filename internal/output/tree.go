package output

import (
	"path/filepath"
	"strings"
)

const (
	// Tree characters
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// Description alignment column
	descriptionColumn = 30
)

// TreeEntry is a path to render in the file tree, with an optional description.
type TreeEntry struct {
	Path        string
	Description string
	IsDir       bool
}

// treeNode represents a node in the file tree.
type treeNode struct {
	name        string
	description string
	isDir       bool
	children    []*treeNode
}

// RenderFileTree renders the generated paths as a tree rooted at projectName,
// with descriptions aligned at column 30. Entries keep their insertion order,
// which matches the order the paths were created in.
func RenderFileTree(projectName string, entries []TreeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := &treeNode{name: projectName, isDir: true}

	for _, e := range entries {
		parts := strings.Split(filepath.ToSlash(e.Path), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *treeNode
			for _, c := range current.children {
				if c.name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &treeNode{name: part, isDir: !isLast || e.IsDir}
				current.children = append(current.children, child)
			}

			if isLast {
				child.description = e.Description
				if e.IsDir {
					child.isDir = true
				}
			}

			current = child
		}
	}

	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

// renderNode recursively renders a tree node with indentation and styling.
func renderNode(sb *strings.Builder, node *treeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleBold.Render(node.name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.name
		if node.isDir {
			name += "/"
		}

		line := prefix + connector + name

		// Align descriptions to a fixed column
		if node.description != "" {
			padding := descriptionColumn - len(line)
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding)
			line += StyleMuted.Render(node.description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.children {
		childIsLast := i == len(node.children)-1

		var childPrefix string
		if isRoot {
			childPrefix = ""
		} else if isLast {
			childPrefix = prefix + treeSpace
		} else {
			childPrefix = prefix + treeVert
		}

		renderNode(sb, child, childPrefix, false, childIsLast)
	}
}
