// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/CollideNV/hadron/ent/auditlog"
	"github.com/CollideNV/hadron/ent/checkpoint"
	"github.com/CollideNV/hadron/ent/conversation"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/ent/event"
	"github.com/CollideNV/hadron/ent/intervention"
	"github.com/CollideNV/hadron/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[1].Descriptor()
	// auditlog.DefaultActor holds the default value on creation for the actor field.
	auditlog.DefaultActor = auditlogDescActor.Default.(string)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[4].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	crrunFields := schema.CRRun{}.Fields()
	_ = crrunFields
	// crrunDescCostUsd is the schema descriptor for cost_usd field.
	crrunDescCostUsd := crrunFields[8].Descriptor()
	// crrun.DefaultCostUsd holds the default value on creation for the cost_usd field.
	crrun.DefaultCostUsd = crrunDescCostUsd.Default.(float64)
	// crrunDescInputTokens is the schema descriptor for input_tokens field.
	crrunDescInputTokens := crrunFields[9].Descriptor()
	// crrun.DefaultInputTokens holds the default value on creation for the input_tokens field.
	crrun.DefaultInputTokens = crrunDescInputTokens.Default.(int64)
	// crrunDescOutputTokens is the schema descriptor for output_tokens field.
	crrunDescOutputTokens := crrunFields[10].Descriptor()
	// crrun.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	crrun.DefaultOutputTokens = crrunDescOutputTokens.Default.(int64)
	// crrunDescCreatedAt is the schema descriptor for created_at field.
	crrunDescCreatedAt := crrunFields[17].Descriptor()
	// crrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	crrun.DefaultCreatedAt = crrunDescCreatedAt.Default.(func() time.Time)
	// crrunDescUpdatedAt is the schema descriptor for updated_at field.
	crrunDescUpdatedAt := crrunFields[18].Descriptor()
	// crrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	crrun.DefaultUpdatedAt = crrunDescUpdatedAt.Default.(func() time.Time)
	// crrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	crrun.UpdateDefaultUpdatedAt = crrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescWrittenAt is the schema descriptor for written_at field.
	checkpointDescWrittenAt := checkpointFields[4].Descriptor()
	// checkpoint.DefaultWrittenAt holds the default value on creation for the written_at field.
	checkpoint.DefaultWrittenAt = checkpointDescWrittenAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[5].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[5].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	interventionFields := schema.Intervention{}.Fields()
	_ = interventionFields
	// interventionDescKey is the schema descriptor for key field.
	interventionDescKey := interventionFields[2].Descriptor()
	// intervention.DefaultKey holds the default value on creation for the key field.
	intervention.DefaultKey = interventionDescKey.Default.(string)
	// interventionDescCreatedAt is the schema descriptor for created_at field.
	interventionDescCreatedAt := interventionFields[5].Descriptor()
	// intervention.DefaultCreatedAt holds the default value on creation for the created_at field.
	intervention.DefaultCreatedAt = interventionDescCreatedAt.Default.(func() time.Time)
}
