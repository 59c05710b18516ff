// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// CRRun is the predicate function for crrun builders.
type CRRun func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Intervention is the predicate function for intervention builders.
type Intervention func(*sql.Selector)
