// Package tween animates values over segmented, eased timelines. A
// Timeline composes segments into a pointwise time-to-value function and
// an Animator samples it once per frame tick, handling direction changes
// and cancellation.
package tween
