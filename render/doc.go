// Package render rasterises a session.Document to PNG with gogpu/gg.
//
// The picture has the map grid in the lower right, the variable bars from
// package labels stacked above and to the left of it, and the title on top.
// Each cell shows its index in small print and its value centred. Markings
// are drawn as lines on the closed sides of every island, pulled into the
// cell by the inset; a side left open by the wraparound gets no line and
// the lines meeting it run through to the map edge. The selected marking
// is drawn thicker.
package render
