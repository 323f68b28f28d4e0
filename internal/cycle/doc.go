// Package cycle implements the display cycle that drives qlture.
//
// A [Cycle] owns the current generator, a paused flag and two periodic
// triggers: redraw and switch. Their intervals move together between
// two profiles, "normal" and "snow". The switch trigger pulls the next
// generator and flips the profile; the redraw trigger renders the
// current generator into a [Sink] unless paused. Clicks pull the next
// generator without touching the profile.
//
// # Threading
//
// A Cycle is not safe for concurrent use. Every backend calls it from
// the single goroutine that runs its event loop (the raylib loop, the
// ebiten Update/Draw goroutine, the Bubble Tea Update function), so no
// locking is done. A backend that renders on another goroutine must
// confine all calls to one of them or serialize them.
//
// Quitting is reported as an [Action]; the cycle never exits the process.
package cycle
