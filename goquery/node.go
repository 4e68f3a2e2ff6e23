package goquery

import "golang.org/x/net/html"

// isDescendant reports whether n is anc or lies beneath it.
func isDescendant(n, anc *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == anc {
			return true
		}
	}
	return false
}

// isAfter reports whether n comes after ref in document order. Descendants
// of ref count as after it.
func isAfter(n, ref *html.Node) bool {
	a, b := nodePath(n), nodePath(ref)
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return len(a) > len(b)
}

// nodePath returns the child-index path from the document root to n.
func nodePath(n *html.Node) []int {
	var path []int
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		idx := 0
		for sib := cur.Parent.FirstChild; sib != nil && sib != cur; sib = sib.NextSibling {
			idx++
		}
		path = append(path, idx)
	}
	// Reverse: the walk collected indexes leaf-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
