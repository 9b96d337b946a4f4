// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"talentbridge/ent/application"
	"talentbridge/ent/job"
	"talentbridge/ent/user"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (ac *ApplicationCreate) SetJobID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetJobID(u)
	return ac
}

// SetUserID sets the "user_id" field.
func (ac *ApplicationCreate) SetUserID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetUserID(u)
	return ac
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableUserID(u *uuid.UUID) *ApplicationCreate {
	if u != nil {
		ac.SetUserID(*u)
	}
	return ac
}

// SetExternalUserID sets the "external_user_id" field.
func (ac *ApplicationCreate) SetExternalUserID(s string) *ApplicationCreate {
	ac.mutation.SetExternalUserID(s)
	return ac
}

// SetNillableExternalUserID sets the "external_user_id" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableExternalUserID(s *string) *ApplicationCreate {
	if s != nil {
		ac.SetExternalUserID(*s)
	}
	return ac
}

// SetResumeID sets the "resume_id" field.
func (ac *ApplicationCreate) SetResumeID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetResumeID(u)
	return ac
}

// SetNillableResumeID sets the "resume_id" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableResumeID(u *uuid.UUID) *ApplicationCreate {
	if u != nil {
		ac.SetResumeID(*u)
	}
	return ac
}

// SetInterviewID sets the "interview_id" field.
func (ac *ApplicationCreate) SetInterviewID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetInterviewID(u)
	return ac
}

// SetNillableInterviewID sets the "interview_id" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableInterviewID(u *uuid.UUID) *ApplicationCreate {
	if u != nil {
		ac.SetInterviewID(*u)
	}
	return ac
}

// SetStatus sets the "status" field.
func (ac *ApplicationCreate) SetStatus(a application.Status) *ApplicationCreate {
	ac.mutation.SetStatus(a)
	return ac
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableStatus(a *application.Status) *ApplicationCreate {
	if a != nil {
		ac.SetStatus(*a)
	}
	return ac
}

// SetMatchScore sets the "match_score" field.
func (ac *ApplicationCreate) SetMatchScore(f float64) *ApplicationCreate {
	ac.mutation.SetMatchScore(f)
	return ac
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableMatchScore(f *float64) *ApplicationCreate {
	if f != nil {
		ac.SetMatchScore(*f)
	}
	return ac
}

// SetNotes sets the "notes" field.
func (ac *ApplicationCreate) SetNotes(s string) *ApplicationCreate {
	ac.mutation.SetNotes(s)
	return ac
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableNotes(s *string) *ApplicationCreate {
	if s != nil {
		ac.SetNotes(*s)
	}
	return ac
}

// SetViewedAt sets the "viewed_at" field.
func (ac *ApplicationCreate) SetViewedAt(t time.Time) *ApplicationCreate {
	ac.mutation.SetViewedAt(t)
	return ac
}

// SetNillableViewedAt sets the "viewed_at" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableViewedAt(t *time.Time) *ApplicationCreate {
	if t != nil {
		ac.SetViewedAt(*t)
	}
	return ac
}

// SetCreatedAt sets the "created_at" field.
func (ac *ApplicationCreate) SetCreatedAt(t time.Time) *ApplicationCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableCreatedAt(t *time.Time) *ApplicationCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *ApplicationCreate) SetUpdatedAt(t time.Time) *ApplicationCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableUpdatedAt(t *time.Time) *ApplicationCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// SetID sets the "id" field.
func (ac *ApplicationCreate) SetID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetID(u)
	return ac
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableID(u *uuid.UUID) *ApplicationCreate {
	if u != nil {
		ac.SetID(*u)
	}
	return ac
}

// SetJob sets the "job" edge to the Job entity.
func (ac *ApplicationCreate) SetJob(j *Job) *ApplicationCreate {
	return ac.SetJobID(j.ID)
}

// SetApplicantID sets the "applicant" edge to the User entity by ID.
func (ac *ApplicationCreate) SetApplicantID(id uuid.UUID) *ApplicationCreate {
	ac.mutation.SetApplicantID(id)
	return ac
}

// SetNillableApplicantID sets the "applicant" edge to the User entity by ID if the given value is not nil.
func (ac *ApplicationCreate) SetNillableApplicantID(id *uuid.UUID) *ApplicationCreate {
	if id != nil {
		ac = ac.SetApplicantID(*id)
	}
	return ac
}

// SetApplicant sets the "applicant" edge to the User entity.
func (ac *ApplicationCreate) SetApplicant(u *User) *ApplicationCreate {
	return ac.SetApplicantID(u.ID)
}

// Mutation returns the ApplicationMutation object of the builder.
func (ac *ApplicationCreate) Mutation() *ApplicationMutation {
	return ac.mutation
}

// Save creates the Application in the database.
func (ac *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *ApplicationCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *ApplicationCreate) defaults() {
	if _, ok := ac.mutation.Status(); !ok {
		v := application.DefaultStatus
		ac.mutation.SetStatus(v)
	}
	if _, ok := ac.mutation.Notes(); !ok {
		v := application.DefaultNotes
		ac.mutation.SetNotes(v)
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := application.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
	if _, ok := ac.mutation.ID(); !ok {
		v := application.DefaultID()
		ac.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *ApplicationCreate) check() error {
	if _, ok := ac.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Application.job_id"`)}
	}
	if _, ok := ac.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Application.status"`)}
	}
	if v, ok := ac.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "Application.notes"`)}
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Application.created_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	if len(ac.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Application.job"`)}
	}
	return nil
}

func (ac *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
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
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	)
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ac.mutation.ExternalUserID(); ok {
		_spec.SetField(application.FieldExternalUserID, field.TypeString, value)
		_node.ExternalUserID = value
	}
	if value, ok := ac.mutation.ResumeID(); ok {
		_spec.SetField(application.FieldResumeID, field.TypeUUID, value)
		_node.ResumeID = value
	}
	if value, ok := ac.mutation.InterviewID(); ok {
		_spec.SetField(application.FieldInterviewID, field.TypeUUID, value)
		_node.InterviewID = value
	}
	if value, ok := ac.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ac.mutation.MatchScore(); ok {
		_spec.SetField(application.FieldMatchScore, field.TypeFloat64, value)
		_node.MatchScore = &value
	}
	if value, ok := ac.mutation.Notes(); ok {
		_spec.SetField(application.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := ac.mutation.ViewedAt(); ok {
		_spec.SetField(application.FieldViewedAt, field.TypeTime, value)
		_node.ViewedAt = &value
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ac.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.JobTable,
			Columns: []string{application.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.ApplicantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.ApplicantTable,
			Columns: []string{application.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
}

// Save creates the Application entities in the database.
func (acb *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Application, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
