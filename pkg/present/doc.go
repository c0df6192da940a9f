// Package present renders decoded bodies as terminal lines.
//
// # Output
//
// List mode prints one summary line per body:
//
//	Name: Moon, ID: lune, Is Planet: false
//
// Detail mode prints a header line, a mass line and one line per physical
// attribute:
//
//	Name: Mars, ID: mars, English Name: Mars, Is Planet: true
//	Mass: 6.42e23
//	Body Type: Planet
//	Density: 3.9341 g/cm³
//	Gravity: not available
//	...
//
// # Absent attributes
//
// Every optional attribute that the API did not provide renders as
// "not available". Mass has its own two messages: one when the object is
// present but missing its value or exponent, another when it is absent.
//
// # Styling
//
// A [Printer] styles labels and values with lipgloss through a
// *lipgloss.Renderer bound to its writer, so colour follows the destination
// terminal. Pass [WithRenderer] with an ASCII colour profile to force plain
// output. The package-level line functions ([SummaryLine], [HeaderLine],
// [MassLine]) always return unstyled text.
package present
