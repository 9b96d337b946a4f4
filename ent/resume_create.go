// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"talentbridge/ent/resume"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ResumeCreate is the builder for creating a Resume entity.
type ResumeCreate struct {
	config
	mutation *ResumeMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (rc *ResumeCreate) SetUserID(u uuid.UUID) *ResumeCreate {
	rc.mutation.SetUserID(u)
	return rc
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rc *ResumeCreate) SetNillableUserID(u *uuid.UUID) *ResumeCreate {
	if u != nil {
		rc.SetUserID(*u)
	}
	return rc
}

// SetExternalUserID sets the "external_user_id" field.
func (rc *ResumeCreate) SetExternalUserID(s string) *ResumeCreate {
	rc.mutation.SetExternalUserID(s)
	return rc
}

// SetNillableExternalUserID sets the "external_user_id" field if the given value is not nil.
func (rc *ResumeCreate) SetNillableExternalUserID(s *string) *ResumeCreate {
	if s != nil {
		rc.SetExternalUserID(*s)
	}
	return rc
}

// SetResumeText sets the "resume_text" field.
func (rc *ResumeCreate) SetResumeText(s string) *ResumeCreate {
	rc.mutation.SetResumeText(s)
	return rc
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (rc *ResumeCreate) SetNillableResumeText(s *string) *ResumeCreate {
	if s != nil {
		rc.SetResumeText(*s)
	}
	return rc
}

// SetSkills sets the "skills" field.
func (rc *ResumeCreate) SetSkills(s []string) *ResumeCreate {
	rc.mutation.SetSkills(s)
	return rc
}

// SetEducation sets the "education" field.
func (rc *ResumeCreate) SetEducation(m []map[string]interface{}) *ResumeCreate {
	rc.mutation.SetEducation(m)
	return rc
}

// SetExperience sets the "experience" field.
func (rc *ResumeCreate) SetExperience(m []map[string]interface{}) *ResumeCreate {
	rc.mutation.SetExperience(m)
	return rc
}

// SetContact sets the "contact" field.
func (rc *ResumeCreate) SetContact(m map[string]interface{}) *ResumeCreate {
	rc.mutation.SetContact(m)
	return rc
}

// SetCreatedAt sets the "created_at" field.
func (rc *ResumeCreate) SetCreatedAt(t time.Time) *ResumeCreate {
	rc.mutation.SetCreatedAt(t)
	return rc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rc *ResumeCreate) SetNillableCreatedAt(t *time.Time) *ResumeCreate {
	if t != nil {
		rc.SetCreatedAt(*t)
	}
	return rc
}

// SetUpdatedAt sets the "updated_at" field.
func (rc *ResumeCreate) SetUpdatedAt(t time.Time) *ResumeCreate {
	rc.mutation.SetUpdatedAt(t)
	return rc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (rc *ResumeCreate) SetNillableUpdatedAt(t *time.Time) *ResumeCreate {
	if t != nil {
		rc.SetUpdatedAt(*t)
	}
	return rc
}

// SetID sets the "id" field.
func (rc *ResumeCreate) SetID(u uuid.UUID) *ResumeCreate {
	rc.mutation.SetID(u)
	return rc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (rc *ResumeCreate) SetNillableID(u *uuid.UUID) *ResumeCreate {
	if u != nil {
		rc.SetID(*u)
	}
	return rc
}

// Mutation returns the ResumeMutation object of the builder.
func (rc *ResumeCreate) Mutation() *ResumeMutation {
	return rc.mutation
}

// Save creates the Resume in the database.
func (rc *ResumeCreate) Save(ctx context.Context) (*Resume, error) {
	rc.defaults()
	return withHooks(ctx, rc.sqlSave, rc.mutation, rc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rc *ResumeCreate) SaveX(ctx context.Context) *Resume {
	v, err := rc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rc *ResumeCreate) Exec(ctx context.Context) error {
	_, err := rc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rc *ResumeCreate) ExecX(ctx context.Context) {
	if err := rc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rc *ResumeCreate) defaults() {
	if _, ok := rc.mutation.ResumeText(); !ok {
		v := resume.DefaultResumeText
		rc.mutation.SetResumeText(v)
	}
	if _, ok := rc.mutation.CreatedAt(); !ok {
		v := resume.DefaultCreatedAt()
		rc.mutation.SetCreatedAt(v)
	}
	if _, ok := rc.mutation.UpdatedAt(); !ok {
		v := resume.DefaultUpdatedAt()
		rc.mutation.SetUpdatedAt(v)
	}
	if _, ok := rc.mutation.ID(); !ok {
		v := resume.DefaultID()
		rc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rc *ResumeCreate) check() error {
	if _, ok := rc.mutation.ResumeText(); !ok {
		return &ValidationError{Name: "resume_text", err: errors.New(`ent: missing required field "Resume.resume_text"`)}
	}
	if _, ok := rc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Resume.created_at"`)}
	}
	if _, ok := rc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Resume.updated_at"`)}
	}
	return nil
}

func (rc *ResumeCreate) sqlSave(ctx context.Context) (*Resume, error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	rc.mutation.id = &_node.ID
	rc.mutation.done = true
	return _node, nil
}

func (rc *ResumeCreate) createSpec() (*Resume, *sqlgraph.CreateSpec) {
	var (
		_node = &Resume{config: rc.config}
		_spec = sqlgraph.NewCreateSpec(resume.Table, sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID))
	)
	if id, ok := rc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := rc.mutation.UserID(); ok {
		_spec.SetField(resume.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := rc.mutation.ExternalUserID(); ok {
		_spec.SetField(resume.FieldExternalUserID, field.TypeString, value)
		_node.ExternalUserID = value
	}
	if value, ok := rc.mutation.ResumeText(); ok {
		_spec.SetField(resume.FieldResumeText, field.TypeString, value)
		_node.ResumeText = value
	}
	if value, ok := rc.mutation.Skills(); ok {
		_spec.SetField(resume.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := rc.mutation.Education(); ok {
		_spec.SetField(resume.FieldEducation, field.TypeJSON, value)
		_node.Education = value
	}
	if value, ok := rc.mutation.Experience(); ok {
		_spec.SetField(resume.FieldExperience, field.TypeJSON, value)
		_node.Experience = value
	}
	if value, ok := rc.mutation.Contact(); ok {
		_spec.SetField(resume.FieldContact, field.TypeJSON, value)
		_node.Contact = value
	}
	if value, ok := rc.mutation.CreatedAt(); ok {
		_spec.SetField(resume.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := rc.mutation.UpdatedAt(); ok {
		_spec.SetField(resume.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ResumeCreateBulk is the builder for creating many Resume entities in bulk.
type ResumeCreateBulk struct {
	config
	err      error
	builders []*ResumeCreate
}

// Save creates the Resume entities in the database.
func (rcb *ResumeCreateBulk) Save(ctx context.Context) ([]*Resume, error) {
	if rcb.err != nil {
		return nil, rcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rcb.builders))
	nodes := make([]*Resume, len(rcb.builders))
	mutators := make([]Mutator, len(rcb.builders))
	for i := range rcb.builders {
		func(i int, root context.Context) {
			builder := rcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResumeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, rcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, rcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rcb *ResumeCreateBulk) SaveX(ctx context.Context) []*Resume {
	v, err := rcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcb *ResumeCreateBulk) Exec(ctx context.Context) error {
	_, err := rcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcb *ResumeCreateBulk) ExecX(ctx context.Context) {
	if err := rcb.Exec(ctx); err != nil {
		panic(err)
	}
}
