package router

import "strings"

type node struct {
	handler  Handler
	children map[string]*node
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// trie maps "/"-separated path segments of one method to handlers.
type trie struct {
	root *node
}

func newTrie() *trie {
	return &trie{root: newNode()}
}

// segments drops the single leading slash; "" and "/" both address the root.
func segments(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// insert binds h at path unless a handler is already bound there.
func (t *trie) insert(path string, h Handler) bool {
	n := t.root
	for _, seg := range segments(path) {
		child, ok := n.children[seg]
		if !ok {
			child = newNode()
			n.children[seg] = child
		}
		n = child
	}
	if n.handler != nil {
		return false
	}
	n.handler = h
	return true
}

func (t *trie) search(path string) (Handler, bool) {
	n := t.root
	for _, seg := range segments(path) {
		child, ok := n.children[seg]
		if !ok {
			return nil, false
		}
		n = child
	}
	return n.handler, n.handler != nil
}
