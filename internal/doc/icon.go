package doc

import "strings"

// Placeholder marks an absent value in the document.
const Placeholder = "-"

const (
	// FontAwesomeBaseURL hosts the SVG files of the Font Awesome icon pack.
	FontAwesomeBaseURL = "https://raw.githubusercontent.com/FortAwesome/Font-Awesome/6.x/svgs/"

	// WarningsSymbolsBaseURL hosts the SVG symbols bundled with the plugin.
	WarningsSymbolsBaseURL = "https://raw.githubusercontent.com/jenkinsci/warnings-ng-plugin/main/plugin/src/main/resources/images/symbols/"

	symbolPrefix      = "symbol"
	symbolMarker      = "symbol-"
	fontAwesomeSuffix = "plugin-font-awesome-api"
	warningsSuffix    = "plugin-warnings-ng"

	runtimeIconPrefix = "/plugin/warnings-ng/"
	sourceIconPrefix  = "plugin/src/main/webapp/"

	iconSize = "48"
)

// IconURL maps an icon reference to the image URL shown in the document.
// It returns false when the reference names no concrete image.
func IconURL(ref string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, symbolPrefix) {
		switch {
		case strings.HasSuffix(ref, fontAwesomeSuffix):
			return FontAwesomeBaseURL + symbolName(ref) + ".svg", true
		case strings.HasSuffix(ref, warningsSuffix):
			return WarningsSymbolsBaseURL + symbolName(ref) + ".svg", true
		default:
			return "", false
		}
	}
	return strings.ReplaceAll(ref, runtimeIconPrefix, sourceIconPrefix), true
}

// ResolveIcon returns the icon cell content for ref: an image labelled
// with alt, or the placeholder.
func ResolveIcon(ref, alt string) Node {
	src, ok := IconURL(ref)
	if !ok {
		return Text(Placeholder)
	}
	return El("img").
		With("src", src).
		With("alt", alt).
		With("height", iconSize).
		With("width", iconSize)
}

// symbolName extracts "<name>" from "symbol-<name> <pack>". A missing
// marker yields an empty name and a missing space keeps the rest.
func symbolName(ref string) string {
	_, after, found := strings.Cut(ref, symbolMarker)
	if !found {
		return ""
	}
	name, _, _ := strings.Cut(after, " ")
	return name
}
