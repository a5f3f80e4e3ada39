// Package layout implements the pure measuring and arranging strategies used
// by control nodes.
//
// A container hands its visible children to PreferredSize and Arrange as
// Items. Docked items are always consumed first, in registration order, each
// claim shrinking the remaining rectangle; the leftover items are then laid
// out with the container's Strategy inside what remains.
//
// Available sizes may be unconstrained on either axis (NaN or +Inf). Every
// strategy then reports the natural size on that axis.
package layout
