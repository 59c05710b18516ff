// Code generated by ent, DO NOT EDIT.

package crrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/CollideNV/hadron/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContainsFold(FieldID, id))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldExternalID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldSource, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldTitle, v))
}

// CurrentStage applies equality check predicate on the "current_stage" field. It's identical to CurrentStageEQ.
func CurrentStage(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldCurrentStage, v))
}

// PauseReason applies equality check predicate on the "pause_reason" field. It's identical to PauseReasonEQ.
func PauseReason(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldPauseReason, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldCostUsd, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldOutputTokens, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldLastInteractionAt, v))
}

// ResumeRequestedAt applies equality check predicate on the "resume_requested_at" field. It's identical to ResumeRequestedAtEQ.
func ResumeRequestedAt(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldResumeRequestedAt, v))
}

// WorkerLog applies equality check predicate on the "worker_log" field. It's identical to WorkerLogEQ.
func WorkerLog(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldWorkerLog, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDIsNil applies the IsNil predicate on the "external_id" field.
func ExternalIDIsNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldIsNull(FieldExternalID))
}

// ExternalIDNotNil applies the NotNil predicate on the "external_id" field.
func ExternalIDNotNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldNotNull(FieldExternalID))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContainsFold(FieldExternalID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContainsFold(FieldSource, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContainsFold(FieldTitle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// CurrentStageGT applies the GT predicate on the "current_stage" field.
func CurrentStageGT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldCurrentStage, v))
}

// CurrentStageGTE applies the GTE predicate on the "current_stage" field.
func CurrentStageGTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldCurrentStage, v))
}

// CurrentStageLT applies the LT predicate on the "current_stage" field.
func CurrentStageLT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldCurrentStage, v))
}

// CurrentStageLTE applies the LTE predicate on the "current_stage" field.
func CurrentStageLTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldCurrentStage, v))
}

// CurrentStageContains applies the Contains predicate on the "current_stage" field.
func CurrentStageContains(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContains(FieldCurrentStage, v))
}

// CurrentStageHasPrefix applies the HasPrefix predicate on the "current_stage" field.
func CurrentStageHasPrefix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasPrefix(FieldCurrentStage, v))
}

// CurrentStageHasSuffix applies the HasSuffix predicate on the "current_stage" field.
func CurrentStageHasSuffix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasSuffix(FieldCurrentStage, v))
}

// CurrentStageIsNil applies the IsNil predicate on the "current_stage" field.
func CurrentStageIsNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldIsNull(FieldCurrentStage))
}

// CurrentStageNotNil applies the NotNil predicate on the "current_stage" field.
func CurrentStageNotNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldNotNull(FieldCurrentStage))
}

// CurrentStageEqualFold applies the EqualFold predicate on the "current_stage" field.
func CurrentStageEqualFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEqualFold(FieldCurrentStage, v))
}

// CurrentStageContainsFold applies the ContainsFold predicate on the "current_stage" field.
func CurrentStageContainsFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContainsFold(FieldCurrentStage, v))
}

// PauseReasonEQ applies the EQ predicate on the "pause_reason" field.
func PauseReasonEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldPauseReason, v))
}

// PauseReasonNEQ applies the NEQ predicate on the "pause_reason" field.
func PauseReasonNEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldPauseReason, v))
}

// PauseReasonIn applies the In predicate on the "pause_reason" field.
func PauseReasonIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldPauseReason, vs...))
}

// PauseReasonNotIn applies the NotIn predicate on the "pause_reason" field.
func PauseReasonNotIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldPauseReason, vs...))
}

// PauseReasonGT applies the GT predicate on the "pause_reason" field.
func PauseReasonGT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldPauseReason, v))
}

// PauseReasonGTE applies the GTE predicate on the "pause_reason" field.
func PauseReasonGTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldPauseReason, v))
}

// PauseReasonLT applies the LT predicate on the "pause_reason" field.
func PauseReasonLT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldPauseReason, v))
}

// PauseReasonLTE applies the LTE predicate on the "pause_reason" field.
func PauseReasonLTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldPauseReason, v))
}

// PauseReasonContains applies the Contains predicate on the "pause_reason" field.
func PauseReasonContains(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContains(FieldPauseReason, v))
}

// PauseReasonHasPrefix applies the HasPrefix predicate on the "pause_reason" field.
func PauseReasonHasPrefix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasPrefix(FieldPauseReason, v))
}

// PauseReasonHasSuffix applies the HasSuffix predicate on the "pause_reason" field.
func PauseReasonHasSuffix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasSuffix(FieldPauseReason, v))
}

// PauseReasonIsNil applies the IsNil predicate on the "pause_reason" field.
func PauseReasonIsNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldIsNull(FieldPauseReason))
}

// PauseReasonNotNil applies the NotNil predicate on the "pause_reason" field.
func PauseReasonNotNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldNotNull(FieldPauseReason))
}

// PauseReasonEqualFold applies the EqualFold predicate on the "pause_reason" field.
func PauseReasonEqualFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEqualFold(FieldPauseReason, v))
}

// PauseReasonContainsFold applies the ContainsFold predicate on the "pause_reason" field.
func PauseReasonContainsFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContainsFold(FieldPauseReason, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldCostUsd, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int64) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldOutputTokens, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldNotNull(FieldLastInteractionAt))
}

// ResumeRequestedAtEQ applies the EQ predicate on the "resume_requested_at" field.
func ResumeRequestedAtEQ(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldResumeRequestedAt, v))
}

// ResumeRequestedAtNEQ applies the NEQ predicate on the "resume_requested_at" field.
func ResumeRequestedAtNEQ(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldResumeRequestedAt, v))
}

// ResumeRequestedAtIn applies the In predicate on the "resume_requested_at" field.
func ResumeRequestedAtIn(vs ...time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldResumeRequestedAt, vs...))
}

// ResumeRequestedAtNotIn applies the NotIn predicate on the "resume_requested_at" field.
func ResumeRequestedAtNotIn(vs ...time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldResumeRequestedAt, vs...))
}

// ResumeRequestedAtGT applies the GT predicate on the "resume_requested_at" field.
func ResumeRequestedAtGT(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldResumeRequestedAt, v))
}

// ResumeRequestedAtGTE applies the GTE predicate on the "resume_requested_at" field.
func ResumeRequestedAtGTE(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldResumeRequestedAt, v))
}

// ResumeRequestedAtLT applies the LT predicate on the "resume_requested_at" field.
func ResumeRequestedAtLT(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldResumeRequestedAt, v))
}

// ResumeRequestedAtLTE applies the LTE predicate on the "resume_requested_at" field.
func ResumeRequestedAtLTE(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldResumeRequestedAt, v))
}

// ResumeRequestedAtIsNil applies the IsNil predicate on the "resume_requested_at" field.
func ResumeRequestedAtIsNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldIsNull(FieldResumeRequestedAt))
}

// ResumeRequestedAtNotNil applies the NotNil predicate on the "resume_requested_at" field.
func ResumeRequestedAtNotNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldNotNull(FieldResumeRequestedAt))
}

// WorkerLogEQ applies the EQ predicate on the "worker_log" field.
func WorkerLogEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldWorkerLog, v))
}

// WorkerLogNEQ applies the NEQ predicate on the "worker_log" field.
func WorkerLogNEQ(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldWorkerLog, v))
}

// WorkerLogIn applies the In predicate on the "worker_log" field.
func WorkerLogIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldWorkerLog, vs...))
}

// WorkerLogNotIn applies the NotIn predicate on the "worker_log" field.
func WorkerLogNotIn(vs ...string) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldWorkerLog, vs...))
}

// WorkerLogGT applies the GT predicate on the "worker_log" field.
func WorkerLogGT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldWorkerLog, v))
}

// WorkerLogGTE applies the GTE predicate on the "worker_log" field.
func WorkerLogGTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldWorkerLog, v))
}

// WorkerLogLT applies the LT predicate on the "worker_log" field.
func WorkerLogLT(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldWorkerLog, v))
}

// WorkerLogLTE applies the LTE predicate on the "worker_log" field.
func WorkerLogLTE(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldWorkerLog, v))
}

// WorkerLogContains applies the Contains predicate on the "worker_log" field.
func WorkerLogContains(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContains(FieldWorkerLog, v))
}

// WorkerLogHasPrefix applies the HasPrefix predicate on the "worker_log" field.
func WorkerLogHasPrefix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasPrefix(FieldWorkerLog, v))
}

// WorkerLogHasSuffix applies the HasSuffix predicate on the "worker_log" field.
func WorkerLogHasSuffix(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldHasSuffix(FieldWorkerLog, v))
}

// WorkerLogIsNil applies the IsNil predicate on the "worker_log" field.
func WorkerLogIsNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldIsNull(FieldWorkerLog))
}

// WorkerLogNotNil applies the NotNil predicate on the "worker_log" field.
func WorkerLogNotNil() predicate.CRRun {
	return predicate.CRRun(sql.FieldNotNull(FieldWorkerLog))
}

// WorkerLogEqualFold applies the EqualFold predicate on the "worker_log" field.
func WorkerLogEqualFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldEqualFold(FieldWorkerLog, v))
}

// WorkerLogContainsFold applies the ContainsFold predicate on the "worker_log" field.
func WorkerLogContainsFold(v string) predicate.CRRun {
	return predicate.CRRun(sql.FieldContainsFold(FieldWorkerLog, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CRRun {
	return predicate.CRRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.CRRun {
	return predicate.CRRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.CRRun {
	return predicate.CRRun(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.CRRun {
	return predicate.CRRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.CRRun {
	return predicate.CRRun(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConversations applies the HasEdge predicate on the "conversations" edge.
func HasConversations() predicate.CRRun {
	return predicate.CRRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationsWith applies the HasEdge predicate on the "conversations" edge with a given conditions (other predicates).
func HasConversationsWith(preds ...predicate.Conversation) predicate.CRRun {
	return predicate.CRRun(func(s *sql.Selector) {
		step := newConversationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditLogs applies the HasEdge predicate on the "audit_logs" edge.
func HasAuditLogs() predicate.CRRun {
	return predicate.CRRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditLogsWith applies the HasEdge predicate on the "audit_logs" edge with a given conditions (other predicates).
func HasAuditLogsWith(preds ...predicate.AuditLog) predicate.CRRun {
	return predicate.CRRun(func(s *sql.Selector) {
		step := newAuditLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CRRun) predicate.CRRun {
	return predicate.CRRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CRRun) predicate.CRRun {
	return predicate.CRRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CRRun) predicate.CRRun {
	return predicate.CRRun(sql.NotPredicates(p))
}
