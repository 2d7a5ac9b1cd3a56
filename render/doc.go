// Package render defines how appended values are turned into text.
//
// The aggregator invokes a Renderer once per appended value, from its
// single consumer goroutine, while holding the scheduling lock. Renderers
// therefore must not block and have no way to report an error; rendering
// is assumed total for every value kind a producer passes.
//
// The built-in TextRenderer relies on Go's Append-style functions
// (strconv.AppendInt, time.AppendFormat) writing into the buffer's
// available capacity, so common kinds like int, bool, and time.Time
// render without allocating. Arbitrary types fall back to fmt.
package render
