// Package graphics provides the geometry and color value types shared by the
// control tree, the layout engine and native peers.
//
// Rectangles are expressed as origin plus extent (X, Y, Width, Height) in
// device-independent pixels. A NaN or +Inf component in a Size used as an
// available size marks that axis as unconstrained.
package graphics
