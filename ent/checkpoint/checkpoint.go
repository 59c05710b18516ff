// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCrID holds the string denoting the cr_id field in the database.
	FieldCrID = "cr_id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldNodeName holds the string denoting the node_name field in the database.
	FieldNodeName = "node_name"
	// FieldStateBlob holds the string denoting the state_blob field in the database.
	FieldStateBlob = "state_blob"
	// FieldWrittenAt holds the string denoting the written_at field in the database.
	FieldWrittenAt = "written_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// CRRunFieldID holds the string denoting the ID field of the CRRun.
	CRRunFieldID = "cr_id"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "checkpoints"
	// RunInverseTable is the table name for the CRRun entity.
	// It exists in this package in order to avoid circular dependency with the "crrun" package.
	RunInverseTable = "cr_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "cr_id"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldCrID,
	FieldSequence,
	FieldNodeName,
	FieldStateBlob,
	FieldWrittenAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultWrittenAt holds the default value on creation for the "written_at" field.
	DefaultWrittenAt func() time.Time
)

// OrderOption defines the ordering options for the Checkpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCrID orders the results by the cr_id field.
func ByCrID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByNodeName orders the results by the node_name field.
func ByNodeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeName, opts...).ToFunc()
}

// ByWrittenAt orders the results by the written_at field.
func ByWrittenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrittenAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, CRRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
