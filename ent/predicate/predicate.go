// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Enterprise is the predicate function for enterprise builders.
type Enterprise func(*sql.Selector)

// Interview is the predicate function for interview builders.
type Interview func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Resume is the predicate function for resume builders.
type Resume func(*sql.Selector)

// School is the predicate function for school builders.
type School func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
