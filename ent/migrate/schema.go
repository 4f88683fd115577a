// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DebatesColumns holds the columns for the "debates" table.
	DebatesColumns = []*schema.Column{
		{Name: "debate_id", Type: field.TypeString, Unique: true},
		{Name: "proposition", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "failed", "stopped"}, Default: "pending"},
		{Name: "phase", Type: field.TypeString, Default: "initializing"},
		{Name: "previous_phase", Type: field.TypeString, Nullable: true},
		{Name: "current_speaker", Type: field.TypeString, Nullable: true},
		{Name: "config", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "paused_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// DebatesTable holds the schema information for the "debates" table.
	DebatesTable = &schema.Table{
		Name:       "debates",
		Columns:    DebatesColumns,
		PrimaryKey: []*schema.Column{DebatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "debate_status",
				Unique:  false,
				Columns: []*schema.Column{DebatesColumns[3]},
			},
			{
				Name:    "debate_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DebatesColumns[3], DebatesColumns[8]},
			},
			{
				Name:    "debate_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{DebatesColumns[3], DebatesColumns[14]},
			},
		},
	}
	// InterventionsColumns holds the columns for the "interventions" table.
	InterventionsColumns = []*schema.Column{
		{Name: "intervention_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"question", "challenge", "evidence_injection", "pause_request", "clarification_request", "resume", "stop", "continue", "reassign_model"}},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "directed_to", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "completed", "failed"}, Default: "queued"},
		{Name: "response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "client_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "debate_id", Type: field.TypeString},
	}
	// InterventionsTable holds the schema information for the "interventions" table.
	InterventionsTable = &schema.Table{
		Name:       "interventions",
		Columns:    InterventionsColumns,
		PrimaryKey: []*schema.Column{InterventionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interventions_debates_interventions",
				Columns:    []*schema.Column{InterventionsColumns[9]},
				RefColumns: []*schema.Column{DebatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "intervention_debate_id_status",
				Unique:  false,
				Columns: []*schema.Column{InterventionsColumns[9], InterventionsColumns[4]},
			},
			{
				Name:    "intervention_debate_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InterventionsColumns[9], InterventionsColumns[7]},
			},
			{
				Name:    "intervention_debate_id_client_key",
				Unique:  true,
				Columns: []*schema.Column{InterventionsColumns[9], InterventionsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "client_key IS NOT NULL",
				},
			},
		},
	}
	// SystemEventsColumns holds the columns for the "system_events" table.
	SystemEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "debate_id", Type: field.TypeString},
	}
	// SystemEventsTable holds the schema information for the "system_events" table.
	SystemEventsTable = &schema.Table{
		Name:       "system_events",
		Columns:    SystemEventsColumns,
		PrimaryKey: []*schema.Column{SystemEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "system_events_debates_system_events",
				Columns:    []*schema.Column{SystemEventsColumns[4]},
				RefColumns: []*schema.Column{DebatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "systemevent_debate_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SystemEventsColumns[4], SystemEventsColumns[3]},
			},
			{
				Name:    "systemevent_channel",
				Unique:  false,
				Columns: []*schema.Column{SystemEventsColumns[1]},
			},
		},
	}
	// UtterancesColumns holds the columns for the "utterances" table.
	UtterancesColumns = []*schema.Column{
		{Name: "utterance_id", Type: field.TypeString, Unique: true},
		{Name: "turn_index", Type: field.TypeInt},
		{Name: "offset_ms", Type: field.TypeInt64},
		{Name: "phase", Type: field.TypeString},
		{Name: "speaker", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "debate_id", Type: field.TypeString},
	}
	// UtterancesTable holds the schema information for the "utterances" table.
	UtterancesTable = &schema.Table{
		Name:       "utterances",
		Columns:    UtterancesColumns,
		PrimaryKey: []*schema.Column{UtterancesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "utterances_debates_utterances",
				Columns:    []*schema.Column{UtterancesColumns[8]},
				RefColumns: []*schema.Column{DebatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "utterance_debate_id_turn_index",
				Unique:  true,
				Columns: []*schema.Column{UtterancesColumns[8], UtterancesColumns[1]},
			},
			{
				Name:    "utterance_debate_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UtterancesColumns[8], UtterancesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DebatesTable,
		InterventionsTable,
		SystemEventsTable,
		UtterancesTable,
	}
)

func init() {
	InterventionsTable.ForeignKeys[0].RefTable = DebatesTable
	SystemEventsTable.ForeignKeys[0].RefTable = DebatesTable
	UtterancesTable.ForeignKeys[0].RefTable = DebatesTable
}
