// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"talentbridge/ent/interview"
	"talentbridge/ent/schema"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// InterviewCreate is the builder for creating a Interview entity.
type InterviewCreate struct {
	config
	mutation *InterviewMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (ic *InterviewCreate) SetUserID(u uuid.UUID) *InterviewCreate {
	ic.mutation.SetUserID(u)
	return ic
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableUserID(u *uuid.UUID) *InterviewCreate {
	if u != nil {
		ic.SetUserID(*u)
	}
	return ic
}

// SetExternalUserID sets the "external_user_id" field.
func (ic *InterviewCreate) SetExternalUserID(s string) *InterviewCreate {
	ic.mutation.SetExternalUserID(s)
	return ic
}

// SetNillableExternalUserID sets the "external_user_id" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableExternalUserID(s *string) *InterviewCreate {
	if s != nil {
		ic.SetExternalUserID(*s)
	}
	return ic
}

// SetJobID sets the "job_id" field.
func (ic *InterviewCreate) SetJobID(u uuid.UUID) *InterviewCreate {
	ic.mutation.SetJobID(u)
	return ic
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableJobID(u *uuid.UUID) *InterviewCreate {
	if u != nil {
		ic.SetJobID(*u)
	}
	return ic
}

// SetStatus sets the "status" field.
func (ic *InterviewCreate) SetStatus(i interview.Status) *InterviewCreate {
	ic.mutation.SetStatus(i)
	return ic
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableStatus(i *interview.Status) *InterviewCreate {
	if i != nil {
		ic.SetStatus(*i)
	}
	return ic
}

// SetCurrentIndex sets the "current_index" field.
func (ic *InterviewCreate) SetCurrentIndex(i int) *InterviewCreate {
	ic.mutation.SetCurrentIndex(i)
	return ic
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableCurrentIndex(i *int) *InterviewCreate {
	if i != nil {
		ic.SetCurrentIndex(*i)
	}
	return ic
}

// SetQuestions sets the "questions" field.
func (ic *InterviewCreate) SetQuestions(s []string) *InterviewCreate {
	ic.mutation.SetQuestions(s)
	return ic
}

// SetAnswers sets the "answers" field.
func (ic *InterviewCreate) SetAnswers(sa []schema.InterviewAnswer) *InterviewCreate {
	ic.mutation.SetAnswers(sa)
	return ic
}

// SetScore sets the "score" field.
func (ic *InterviewCreate) SetScore(f float64) *InterviewCreate {
	ic.mutation.SetScore(f)
	return ic
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableScore(f *float64) *InterviewCreate {
	if f != nil {
		ic.SetScore(*f)
	}
	return ic
}

// SetFeedback sets the "feedback" field.
func (ic *InterviewCreate) SetFeedback(s string) *InterviewCreate {
	ic.mutation.SetFeedback(s)
	return ic
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableFeedback(s *string) *InterviewCreate {
	if s != nil {
		ic.SetFeedback(*s)
	}
	return ic
}

// SetCompletedAt sets the "completed_at" field.
func (ic *InterviewCreate) SetCompletedAt(t time.Time) *InterviewCreate {
	ic.mutation.SetCompletedAt(t)
	return ic
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableCompletedAt(t *time.Time) *InterviewCreate {
	if t != nil {
		ic.SetCompletedAt(*t)
	}
	return ic
}

// SetCreatedAt sets the "created_at" field.
func (ic *InterviewCreate) SetCreatedAt(t time.Time) *InterviewCreate {
	ic.mutation.SetCreatedAt(t)
	return ic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableCreatedAt(t *time.Time) *InterviewCreate {
	if t != nil {
		ic.SetCreatedAt(*t)
	}
	return ic
}

// SetUpdatedAt sets the "updated_at" field.
func (ic *InterviewCreate) SetUpdatedAt(t time.Time) *InterviewCreate {
	ic.mutation.SetUpdatedAt(t)
	return ic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableUpdatedAt(t *time.Time) *InterviewCreate {
	if t != nil {
		ic.SetUpdatedAt(*t)
	}
	return ic
}

// SetID sets the "id" field.
func (ic *InterviewCreate) SetID(u uuid.UUID) *InterviewCreate {
	ic.mutation.SetID(u)
	return ic
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ic *InterviewCreate) SetNillableID(u *uuid.UUID) *InterviewCreate {
	if u != nil {
		ic.SetID(*u)
	}
	return ic
}

// Mutation returns the InterviewMutation object of the builder.
func (ic *InterviewCreate) Mutation() *InterviewMutation {
	return ic.mutation
}

// Save creates the Interview in the database.
func (ic *InterviewCreate) Save(ctx context.Context) (*Interview, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *InterviewCreate) SaveX(ctx context.Context) *Interview {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *InterviewCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *InterviewCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *InterviewCreate) defaults() {
	if _, ok := ic.mutation.Status(); !ok {
		v := interview.DefaultStatus
		ic.mutation.SetStatus(v)
	}
	if _, ok := ic.mutation.CurrentIndex(); !ok {
		v := interview.DefaultCurrentIndex
		ic.mutation.SetCurrentIndex(v)
	}
	if _, ok := ic.mutation.Feedback(); !ok {
		v := interview.DefaultFeedback
		ic.mutation.SetFeedback(v)
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		v := interview.DefaultCreatedAt()
		ic.mutation.SetCreatedAt(v)
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		v := interview.DefaultUpdatedAt()
		ic.mutation.SetUpdatedAt(v)
	}
	if _, ok := ic.mutation.ID(); !ok {
		v := interview.DefaultID()
		ic.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *InterviewCreate) check() error {
	if _, ok := ic.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Interview.status"`)}
	}
	if v, ok := ic.mutation.Status(); ok {
		if err := interview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interview.status": %w`, err)}
		}
	}
	if _, ok := ic.mutation.CurrentIndex(); !ok {
		return &ValidationError{Name: "current_index", err: errors.New(`ent: missing required field "Interview.current_index"`)}
	}
	if v, ok := ic.mutation.CurrentIndex(); ok {
		if err := interview.CurrentIndexValidator(v); err != nil {
			return &ValidationError{Name: "current_index", err: fmt.Errorf(`ent: validator failed for field "Interview.current_index": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "Interview.feedback"`)}
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Interview.created_at"`)}
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Interview.updated_at"`)}
	}
	return nil
}

func (ic *InterviewCreate) sqlSave(ctx context.Context) (*Interview, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
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
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *InterviewCreate) createSpec() (*Interview, *sqlgraph.CreateSpec) {
	var (
		_node = &Interview{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(interview.Table, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeUUID))
	)
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ic.mutation.UserID(); ok {
		_spec.SetField(interview.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := ic.mutation.ExternalUserID(); ok {
		_spec.SetField(interview.FieldExternalUserID, field.TypeString, value)
		_node.ExternalUserID = value
	}
	if value, ok := ic.mutation.JobID(); ok {
		_spec.SetField(interview.FieldJobID, field.TypeUUID, value)
		_node.JobID = value
	}
	if value, ok := ic.mutation.Status(); ok {
		_spec.SetField(interview.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ic.mutation.CurrentIndex(); ok {
		_spec.SetField(interview.FieldCurrentIndex, field.TypeInt, value)
		_node.CurrentIndex = value
	}
	if value, ok := ic.mutation.Questions(); ok {
		_spec.SetField(interview.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := ic.mutation.Answers(); ok {
		_spec.SetField(interview.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := ic.mutation.Score(); ok {
		_spec.SetField(interview.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := ic.mutation.Feedback(); ok {
		_spec.SetField(interview.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := ic.mutation.CompletedAt(); ok {
		_spec.SetField(interview.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := ic.mutation.CreatedAt(); ok {
		_spec.SetField(interview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ic.mutation.UpdatedAt(); ok {
		_spec.SetField(interview.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// InterviewCreateBulk is the builder for creating many Interview entities in bulk.
type InterviewCreateBulk struct {
	config
	err      error
	builders []*InterviewCreate
}

// Save creates the Interview entities in the database.
func (icb *InterviewCreateBulk) Save(ctx context.Context) ([]*Interview, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Interview, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewMutation)
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
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *InterviewCreateBulk) SaveX(ctx context.Context) []*Interview {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *InterviewCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *InterviewCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}
