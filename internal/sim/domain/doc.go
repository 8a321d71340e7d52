// Package domain defines the value types that make up a game world
// snapshot: players, clubs, leagues, fixtures, the scout, disciplinary
// records, regional knowledge and the weekly schedule.
//
// Types in this package are plain values. Nothing here mutates shared
// state: subsystems read a snapshot, return change-sets, and the tick
// commit phase builds a new snapshot from the old one. Numeric fields are
// clamped at every write site rather than validated up front, so a
// snapshot with out-of-range or dangling data is survivable by design.
package domain
