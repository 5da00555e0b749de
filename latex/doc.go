// Package latex writes a session.Document as input for the LaTeX
// \karnaughmap macro (kvmacros package):
//
//	\karnaughmap{<n>}{<title>}%
//	{{<v_{n-1}>}...{<v_0>}}
//	{<values>}
//	{<ovals>}
//
// Each marking becomes one \textcolor group holding an \oval per island.
// An island that is closed on both sides of an axis (or on neither) gets an
// oval centred on it along that axis. An island cut open on one side by the
// map's wraparound gets an oval centred on the open edge, twice as large
// along that axis, with only the closed half drawn through the \oval side
// selector. Its counterpart on the opposite edge draws the other half.
package latex
