// Package widget implements the color widgets: Spectrum, Plane and Slider.
//
// Each widget owns one surface and one pointer controller and runs the same
// cycle after every state change:
//
//  1. render the gradient field
//  2. draw the pointer glyph at the committed position
//  3. read the selected pixel back from the surface
//  4. call the change callback with the sampled value
//
// The cycle also runs once when the widget is created, so a callback
// registered with WithOnChange always sees the initial value. Widgets are
// not safe for concurrent use; feed events from one goroutine in arrival
// order.
package widget
