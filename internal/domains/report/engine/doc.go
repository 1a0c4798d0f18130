// Package engine turns reservation, room and expense snapshots into occupancy, revenue and
// dashboard figures. Every function is pure: no I/O, no clock reads. Dates are calendar
// dates held as midnight UTC values and "today" is always passed in by the caller.
package engine
