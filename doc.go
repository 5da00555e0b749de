// Package karnaugh is a Karnaugh-map toolkit: the map geometry, an editing
// session for drawing groups on it, and exporters for LaTeX and PNG.
//
// What is in here?
//
//	kmap/     : Gray-code layout, index ↔ cell codec, Hamming adjacency,
//	            group expand/shrink, islands and their open/closed sides
//	session/  : markings edited by clicks, colour cycling, snapshots
//	labels/   : variable bars along the top and left axes
//	latex/    : \karnaughmap export for the kvmacros package
//	render/   : PNG rasterisation
//	script/   : YAML session files, replayed onto a session
//	config/   : palette, defaults and exporter settings (file + KVMAP_ env)
//	pool/     : tag allocator and colour cycle
//	bintree/  : complete binary tree backing the label bars
//	logging/  : zap logger construction
//
// The kvmap command (cmd/kvmap) ties these together.
//
// Quick example, a 4-variable map with one group of four:
//
//	      00 01 11 10
//	  00 [ 0][ 1] 5  4
//	  01 [ 2][ 3] 7  6
//	  11  10 11  15 14
//	  10   8  9  13 12
//
//	s, _ := session.New(session.WithVars("A", "B", "C", "D"))
//	s.LeftClick(0, 0)
//	s.LeftClick(1, 0)
//	s.LeftClick(0, 1)
//	fmt.Print(latex.Export(s.Document()))
//
// Every map of n variables is 2^⌈n/2⌉ cells wide and 2^⌊n/2⌋ tall; even
// index bits select the column, odd bits the row, each through a Gray code,
// so neighbouring cells (wrapping around the edges) differ in one variable.
package karnaugh
