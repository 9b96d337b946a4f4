// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"talentbridge/ent/application"
	"talentbridge/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (au *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetResumeID sets the "resume_id" field.
func (au *ApplicationUpdate) SetResumeID(u uuid.UUID) *ApplicationUpdate {
	au.mutation.SetResumeID(u)
	return au
}

// SetNillableResumeID sets the "resume_id" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableResumeID(u *uuid.UUID) *ApplicationUpdate {
	if u != nil {
		au.SetResumeID(*u)
	}
	return au
}

// ClearResumeID clears the value of the "resume_id" field.
func (au *ApplicationUpdate) ClearResumeID() *ApplicationUpdate {
	au.mutation.ClearResumeID()
	return au
}

// SetInterviewID sets the "interview_id" field.
func (au *ApplicationUpdate) SetInterviewID(u uuid.UUID) *ApplicationUpdate {
	au.mutation.SetInterviewID(u)
	return au
}

// SetNillableInterviewID sets the "interview_id" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableInterviewID(u *uuid.UUID) *ApplicationUpdate {
	if u != nil {
		au.SetInterviewID(*u)
	}
	return au
}

// ClearInterviewID clears the value of the "interview_id" field.
func (au *ApplicationUpdate) ClearInterviewID() *ApplicationUpdate {
	au.mutation.ClearInterviewID()
	return au
}

// SetStatus sets the "status" field.
func (au *ApplicationUpdate) SetStatus(a application.Status) *ApplicationUpdate {
	au.mutation.SetStatus(a)
	return au
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableStatus(a *application.Status) *ApplicationUpdate {
	if a != nil {
		au.SetStatus(*a)
	}
	return au
}

// SetMatchScore sets the "match_score" field.
func (au *ApplicationUpdate) SetMatchScore(f float64) *ApplicationUpdate {
	au.mutation.ResetMatchScore()
	au.mutation.SetMatchScore(f)
	return au
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableMatchScore(f *float64) *ApplicationUpdate {
	if f != nil {
		au.SetMatchScore(*f)
	}
	return au
}

// AddMatchScore adds f to the "match_score" field.
func (au *ApplicationUpdate) AddMatchScore(f float64) *ApplicationUpdate {
	au.mutation.AddMatchScore(f)
	return au
}

// ClearMatchScore clears the value of the "match_score" field.
func (au *ApplicationUpdate) ClearMatchScore() *ApplicationUpdate {
	au.mutation.ClearMatchScore()
	return au
}

// SetNotes sets the "notes" field.
func (au *ApplicationUpdate) SetNotes(s string) *ApplicationUpdate {
	au.mutation.SetNotes(s)
	return au
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableNotes(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetNotes(*s)
	}
	return au
}

// SetViewedAt sets the "viewed_at" field.
func (au *ApplicationUpdate) SetViewedAt(t time.Time) *ApplicationUpdate {
	au.mutation.SetViewedAt(t)
	return au
}

// SetNillableViewedAt sets the "viewed_at" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableViewedAt(t *time.Time) *ApplicationUpdate {
	if t != nil {
		au.SetViewedAt(*t)
	}
	return au
}

// ClearViewedAt clears the value of the "viewed_at" field.
func (au *ApplicationUpdate) ClearViewedAt() *ApplicationUpdate {
	au.mutation.ClearViewedAt()
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *ApplicationUpdate) SetUpdatedAt(t time.Time) *ApplicationUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// Mutation returns the ApplicationMutation object of the builder.
func (au *ApplicationUpdate) Mutation() *ApplicationMutation {
	return au.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *ApplicationUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *ApplicationUpdate) check() error {
	if v, ok := au.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if au.mutation.JobCleared() && len(au.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.job"`)
	}
	return nil
}

func (au *ApplicationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if au.mutation.ExternalUserIDCleared() {
		_spec.ClearField(application.FieldExternalUserID, field.TypeString)
	}
	if value, ok := au.mutation.ResumeID(); ok {
		_spec.SetField(application.FieldResumeID, field.TypeUUID, value)
	}
	if au.mutation.ResumeIDCleared() {
		_spec.ClearField(application.FieldResumeID, field.TypeUUID)
	}
	if value, ok := au.mutation.InterviewID(); ok {
		_spec.SetField(application.FieldInterviewID, field.TypeUUID, value)
	}
	if au.mutation.InterviewIDCleared() {
		_spec.ClearField(application.FieldInterviewID, field.TypeUUID)
	}
	if value, ok := au.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := au.mutation.MatchScore(); ok {
		_spec.SetField(application.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := au.mutation.AddedMatchScore(); ok {
		_spec.AddField(application.FieldMatchScore, field.TypeFloat64, value)
	}
	if au.mutation.MatchScoreCleared() {
		_spec.ClearField(application.FieldMatchScore, field.TypeFloat64)
	}
	if value, ok := au.mutation.Notes(); ok {
		_spec.SetField(application.FieldNotes, field.TypeString, value)
	}
	if value, ok := au.mutation.ViewedAt(); ok {
		_spec.SetField(application.FieldViewedAt, field.TypeTime, value)
	}
	if au.mutation.ViewedAtCleared() {
		_spec.ClearField(application.FieldViewedAt, field.TypeTime)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetResumeID sets the "resume_id" field.
func (auo *ApplicationUpdateOne) SetResumeID(u uuid.UUID) *ApplicationUpdateOne {
	auo.mutation.SetResumeID(u)
	return auo
}

// SetNillableResumeID sets the "resume_id" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableResumeID(u *uuid.UUID) *ApplicationUpdateOne {
	if u != nil {
		auo.SetResumeID(*u)
	}
	return auo
}

// ClearResumeID clears the value of the "resume_id" field.
func (auo *ApplicationUpdateOne) ClearResumeID() *ApplicationUpdateOne {
	auo.mutation.ClearResumeID()
	return auo
}

// SetInterviewID sets the "interview_id" field.
func (auo *ApplicationUpdateOne) SetInterviewID(u uuid.UUID) *ApplicationUpdateOne {
	auo.mutation.SetInterviewID(u)
	return auo
}

// SetNillableInterviewID sets the "interview_id" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableInterviewID(u *uuid.UUID) *ApplicationUpdateOne {
	if u != nil {
		auo.SetInterviewID(*u)
	}
	return auo
}

// ClearInterviewID clears the value of the "interview_id" field.
func (auo *ApplicationUpdateOne) ClearInterviewID() *ApplicationUpdateOne {
	auo.mutation.ClearInterviewID()
	return auo
}

// SetStatus sets the "status" field.
func (auo *ApplicationUpdateOne) SetStatus(a application.Status) *ApplicationUpdateOne {
	auo.mutation.SetStatus(a)
	return auo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableStatus(a *application.Status) *ApplicationUpdateOne {
	if a != nil {
		auo.SetStatus(*a)
	}
	return auo
}

// SetMatchScore sets the "match_score" field.
func (auo *ApplicationUpdateOne) SetMatchScore(f float64) *ApplicationUpdateOne {
	auo.mutation.ResetMatchScore()
	auo.mutation.SetMatchScore(f)
	return auo
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableMatchScore(f *float64) *ApplicationUpdateOne {
	if f != nil {
		auo.SetMatchScore(*f)
	}
	return auo
}

// AddMatchScore adds f to the "match_score" field.
func (auo *ApplicationUpdateOne) AddMatchScore(f float64) *ApplicationUpdateOne {
	auo.mutation.AddMatchScore(f)
	return auo
}

// ClearMatchScore clears the value of the "match_score" field.
func (auo *ApplicationUpdateOne) ClearMatchScore() *ApplicationUpdateOne {
	auo.mutation.ClearMatchScore()
	return auo
}

// SetNotes sets the "notes" field.
func (auo *ApplicationUpdateOne) SetNotes(s string) *ApplicationUpdateOne {
	auo.mutation.SetNotes(s)
	return auo
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableNotes(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetNotes(*s)
	}
	return auo
}

// SetViewedAt sets the "viewed_at" field.
func (auo *ApplicationUpdateOne) SetViewedAt(t time.Time) *ApplicationUpdateOne {
	auo.mutation.SetViewedAt(t)
	return auo
}

// SetNillableViewedAt sets the "viewed_at" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableViewedAt(t *time.Time) *ApplicationUpdateOne {
	if t != nil {
		auo.SetViewedAt(*t)
	}
	return auo
}

// ClearViewedAt clears the value of the "viewed_at" field.
func (auo *ApplicationUpdateOne) ClearViewedAt() *ApplicationUpdateOne {
	auo.mutation.ClearViewedAt()
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *ApplicationUpdateOne) SetUpdatedAt(t time.Time) *ApplicationUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// Mutation returns the ApplicationMutation object of the builder.
func (auo *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return auo.mutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (auo *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Application entity.
func (auo *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *ApplicationUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *ApplicationUpdateOne) check() error {
	if v, ok := auo.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if auo.mutation.JobCleared() && len(auo.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.job"`)
	}
	return nil
}

func (auo *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if auo.mutation.ExternalUserIDCleared() {
		_spec.ClearField(application.FieldExternalUserID, field.TypeString)
	}
	if value, ok := auo.mutation.ResumeID(); ok {
		_spec.SetField(application.FieldResumeID, field.TypeUUID, value)
	}
	if auo.mutation.ResumeIDCleared() {
		_spec.ClearField(application.FieldResumeID, field.TypeUUID)
	}
	if value, ok := auo.mutation.InterviewID(); ok {
		_spec.SetField(application.FieldInterviewID, field.TypeUUID, value)
	}
	if auo.mutation.InterviewIDCleared() {
		_spec.ClearField(application.FieldInterviewID, field.TypeUUID)
	}
	if value, ok := auo.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.MatchScore(); ok {
		_spec.SetField(application.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := auo.mutation.AddedMatchScore(); ok {
		_spec.AddField(application.FieldMatchScore, field.TypeFloat64, value)
	}
	if auo.mutation.MatchScoreCleared() {
		_spec.ClearField(application.FieldMatchScore, field.TypeFloat64)
	}
	if value, ok := auo.mutation.Notes(); ok {
		_spec.SetField(application.FieldNotes, field.TypeString, value)
	}
	if value, ok := auo.mutation.ViewedAt(); ok {
		_spec.SetField(application.FieldViewedAt, field.TypeTime, value)
	}
	if auo.mutation.ViewedAtCleared() {
		_spec.ClearField(application.FieldViewedAt, field.TypeTime)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Application{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
