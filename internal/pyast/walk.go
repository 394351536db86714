package pyast

import "iter"

// Descendants returns a lazy sequence over every node reachable from n
// through containment, in pre-order. The root itself is not yielded. The
// sequence is single-use; range over it once.
func Descendants(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		var walk func(*Node) bool
		walk = func(cur *Node) bool {
			return cur.children(func(child *Node) bool {
				if !yield(child) {
					return false
				}
				return walk(child)
			})
		}
		walk(n)
	}
}
