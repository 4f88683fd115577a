// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/debatelab/agora/ent/debate"
	"github.com/debatelab/agora/ent/intervention"
	"github.com/debatelab/agora/ent/schema"
	"github.com/debatelab/agora/ent/systemevent"
	"github.com/debatelab/agora/ent/utterance"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	debateFields := schema.Debate{}.Fields()
	_ = debateFields
	// debateDescPhase is the schema descriptor for phase field.
	debateDescPhase := debateFields[4].Descriptor()
	// debate.DefaultPhase holds the default value on creation for the phase field.
	debate.DefaultPhase = debateDescPhase.Default.(string)
	// debateDescCreatedAt is the schema descriptor for created_at field.
	debateDescCreatedAt := debateFields[8].Descriptor()
	// debate.DefaultCreatedAt holds the default value on creation for the created_at field.
	debate.DefaultCreatedAt = debateDescCreatedAt.Default.(func() time.Time)
	// debateDescPausedMs is the schema descriptor for paused_ms field.
	debateDescPausedMs := debateFields[11].Descriptor()
	// debate.DefaultPausedMs holds the default value on creation for the paused_ms field.
	debate.DefaultPausedMs = debateDescPausedMs.Default.(int64)
	interventionFields := schema.Intervention{}.Fields()
	_ = interventionFields
	// interventionDescCreatedAt is the schema descriptor for created_at field.
	interventionDescCreatedAt := interventionFields[8].Descriptor()
	// intervention.DefaultCreatedAt holds the default value on creation for the created_at field.
	intervention.DefaultCreatedAt = interventionDescCreatedAt.Default.(func() time.Time)
	systemeventFields := schema.SystemEvent{}.Fields()
	_ = systemeventFields
	// systemeventDescCreatedAt is the schema descriptor for created_at field.
	systemeventDescCreatedAt := systemeventFields[4].Descriptor()
	// systemevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	systemevent.DefaultCreatedAt = systemeventDescCreatedAt.Default.(func() time.Time)
	utteranceFields := schema.Utterance{}.Fields()
	_ = utteranceFields
	// utteranceDescCreatedAt is the schema descriptor for created_at field.
	utteranceDescCreatedAt := utteranceFields[8].Descriptor()
	// utterance.DefaultCreatedAt holds the default value on creation for the created_at field.
	utterance.DefaultCreatedAt = utteranceDescCreatedAt.Default.(func() time.Time)
}
