// Package htmlbuilder builds HTML pages programmatically and renders them to
// text.
//
// A page is a tree of nodes. Nodes carry a tag, a fixed set of attributes, a
// class list and children, which are text, other nodes, tables or CSS style
// rules. A Table keeps its data as a matrix of values plus class rules for
// cells, rows and columns and turns them into tr and td nodes each time it is
// rendered. Nothing is rendered until String or Render is called.
package htmlbuilder
