// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobEval is the predicate function for jobeval builders.
type JobEval func(*sql.Selector)

// JobStep is the predicate function for jobstep builders.
type JobStep func(*sql.Selector)

// Persona is the predicate function for persona builders.
type Persona func(*sql.Selector)

// SystemLog is the predicate function for systemlog builders.
type SystemLog func(*sql.Selector)
