// Code generated by ent, DO NOT EDIT.

package intervention

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/CollideNV/hadron/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldID, id))
}

// CrID applies equality check predicate on the "cr_id" field. It's identical to CrIDEQ.
func CrID(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldCrID, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldKey, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldCreatedAt, v))
}

// CrIDEQ applies the EQ predicate on the "cr_id" field.
func CrIDEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldCrID, v))
}

// CrIDNEQ applies the NEQ predicate on the "cr_id" field.
func CrIDNEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldCrID, v))
}

// CrIDIn applies the In predicate on the "cr_id" field.
func CrIDIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldCrID, vs...))
}

// CrIDNotIn applies the NotIn predicate on the "cr_id" field.
func CrIDNotIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldCrID, vs...))
}

// CrIDGT applies the GT predicate on the "cr_id" field.
func CrIDGT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldCrID, v))
}

// CrIDGTE applies the GTE predicate on the "cr_id" field.
func CrIDGTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldCrID, v))
}

// CrIDLT applies the LT predicate on the "cr_id" field.
func CrIDLT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldCrID, v))
}

// CrIDLTE applies the LTE predicate on the "cr_id" field.
func CrIDLTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldCrID, v))
}

// CrIDContains applies the Contains predicate on the "cr_id" field.
func CrIDContains(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContains(FieldCrID, v))
}

// CrIDHasPrefix applies the HasPrefix predicate on the "cr_id" field.
func CrIDHasPrefix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasPrefix(FieldCrID, v))
}

// CrIDHasSuffix applies the HasSuffix predicate on the "cr_id" field.
func CrIDHasSuffix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasSuffix(FieldCrID, v))
}

// CrIDEqualFold applies the EqualFold predicate on the "cr_id" field.
func CrIDEqualFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEqualFold(FieldCrID, v))
}

// CrIDContainsFold applies the ContainsFold predicate on the "cr_id" field.
func CrIDContainsFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContainsFold(FieldCrID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldKind, vs...))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContainsFold(FieldKey, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldNotNull(FieldExpiresAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Intervention) predicate.Intervention {
	return predicate.Intervention(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Intervention) predicate.Intervention {
	return predicate.Intervention(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Intervention) predicate.Intervention {
	return predicate.Intervention(sql.NotPredicates(p))
}
