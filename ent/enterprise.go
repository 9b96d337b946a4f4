// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"talentbridge/ent/enterprise"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Enterprise is the model entity for the Enterprise schema.
type Enterprise struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Industry holds the value of the "industry" field.
	Industry string `json:"industry,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EnterpriseQuery when eager-loading is set.
	Edges        EnterpriseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EnterpriseEdges holds the relations/edges for other nodes in the graph.
type EnterpriseEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// Members holds the value of the members edge.
	Members []*User `json:"members,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e EnterpriseEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// MembersOrErr returns the Members value or an error if the edge
// was not loaded in eager-loading.
func (e EnterpriseEdges) MembersOrErr() ([]*User, error) {
	if e.loadedTypes[1] {
		return e.Members, nil
	}
	return nil, &NotLoadedError{edge: "members"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Enterprise) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case enterprise.FieldName, enterprise.FieldIndustry, enterprise.FieldDescription:
			values[i] = new(sql.NullString)
		case enterprise.FieldCreatedAt, enterprise.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case enterprise.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Enterprise fields.
func (e *Enterprise) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case enterprise.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				e.ID = *value
			}
		case enterprise.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				e.Name = value.String
			}
		case enterprise.FieldIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry", values[i])
			} else if value.Valid {
				e.Industry = value.String
			}
		case enterprise.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				e.Description = value.String
			}
		case enterprise.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				e.CreatedAt = value.Time
			}
		case enterprise.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				e.UpdatedAt = value.Time
			}
		default:
			e.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Enterprise.
// This includes values selected through modifiers, order, etc.
func (e *Enterprise) Value(name string) (ent.Value, error) {
	return e.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the Enterprise entity.
func (e *Enterprise) QueryJobs() *JobQuery {
	return NewEnterpriseClient(e.config).QueryJobs(e)
}

// QueryMembers queries the "members" edge of the Enterprise entity.
func (e *Enterprise) QueryMembers() *UserQuery {
	return NewEnterpriseClient(e.config).QueryMembers(e)
}

// Update returns a builder for updating this Enterprise.
// Note that you need to call Enterprise.Unwrap() before calling this method if this Enterprise
// was returned from a transaction, and the transaction was committed or rolled back.
func (e *Enterprise) Update() *EnterpriseUpdateOne {
	return NewEnterpriseClient(e.config).UpdateOne(e)
}

// Unwrap unwraps the Enterprise entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (e *Enterprise) Unwrap() *Enterprise {
	_tx, ok := e.config.driver.(*txDriver)
	if !ok {
		panic("ent: Enterprise is not a transactional entity")
	}
	e.config.driver = _tx.drv
	return e
}

// String implements the fmt.Stringer.
func (e *Enterprise) String() string {
	var builder strings.Builder
	builder.WriteString("Enterprise(")
	builder.WriteString(fmt.Sprintf("id=%v, ", e.ID))
	builder.WriteString("name=")
	builder.WriteString(e.Name)
	builder.WriteString(", ")
	builder.WriteString("industry=")
	builder.WriteString(e.Industry)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(e.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(e.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(e.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Enterprises is a parsable slice of Enterprise.
type Enterprises []*Enterprise
