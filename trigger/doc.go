// Package trigger models discrete per-step events: at every step an event
// value is either absent (None) or present with a payload (Fire). A trigger
// fires at most once per step and carries no history — latching, holding and
// windowing over triggers live in package interval.
//
// ⚙️ Usage:
//
//	e := trigger.Fire("door-opened")
//	msg := trigger.Elim("quiet", func(s string) string { return "got " + s }, e)
//	// msg == "got door-opened"
package trigger
