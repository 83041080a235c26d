// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// PlannedRun is the predicate function for plannedrun builders.
type PlannedRun func(*sql.Selector)

// RunResult is the predicate function for runresult builders.
type RunResult func(*sql.Selector)

// StreamEvent is the predicate function for streamevent builders.
type StreamEvent func(*sql.Selector)
