// Code generated by ent, DO NOT EDIT.

package intervention

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the intervention type in the database.
	Label = "intervention"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCrID holds the string denoting the cr_id field in the database.
	FieldCrID = "cr_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the intervention in the database.
	Table = "interventions"
)

// Columns holds all SQL columns for intervention fields.
var Columns = []string{
	FieldID,
	FieldCrID,
	FieldKind,
	FieldKey,
	FieldPayload,
	FieldExpiresAt,
	FieldCreatedAt,
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
	// DefaultKey holds the default value on creation for the "key" field.
	DefaultKey string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindInstructions    Kind = "instructions"
	KindNudge           Kind = "nudge"
	KindResumeOverrides Kind = "resume_overrides"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindInstructions, KindNudge, KindResumeOverrides:
		return nil
	default:
		return fmt.Errorf("intervention: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the Intervention queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCrID orders the results by the cr_id field.
func ByCrID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
