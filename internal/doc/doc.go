// Package doc generates the reference document that lists every tool
// descriptor: one HTML table row per tool with its id, pipeline symbol,
// icon, linked name and default pattern, followed by an optional help row.
//
// The pipeline is a single sequential pass:
//
//	Sort -> BuildRows (fields + icon) -> Document.Render -> write file
//
// Generate runs the whole pass and writes the result to a path. The
// generation timestamp is passed in through Options so that everything
// below the banner is a pure function of the descriptors.
package doc
