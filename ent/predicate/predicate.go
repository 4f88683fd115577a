// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Debate is the predicate function for debate builders.
type Debate func(*sql.Selector)

// Intervention is the predicate function for intervention builders.
type Intervention func(*sql.Selector)

// SystemEvent is the predicate function for systemevent builders.
type SystemEvent func(*sql.Selector)

// Utterance is the predicate function for utterance builders.
type Utterance func(*sql.Selector)
