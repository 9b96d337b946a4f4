// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"talentbridge/ent/interview"
	"talentbridge/ent/predicate"
	"talentbridge/ent/schema"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// InterviewUpdate is the builder for updating Interview entities.
type InterviewUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewMutation
}

// Where appends a list predicates to the InterviewUpdate builder.
func (iu *InterviewUpdate) Where(ps ...predicate.Interview) *InterviewUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetUserID sets the "user_id" field.
func (iu *InterviewUpdate) SetUserID(u uuid.UUID) *InterviewUpdate {
	iu.mutation.SetUserID(u)
	return iu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (iu *InterviewUpdate) SetNillableUserID(u *uuid.UUID) *InterviewUpdate {
	if u != nil {
		iu.SetUserID(*u)
	}
	return iu
}

// ClearUserID clears the value of the "user_id" field.
func (iu *InterviewUpdate) ClearUserID() *InterviewUpdate {
	iu.mutation.ClearUserID()
	return iu
}

// SetExternalUserID sets the "external_user_id" field.
func (iu *InterviewUpdate) SetExternalUserID(s string) *InterviewUpdate {
	iu.mutation.SetExternalUserID(s)
	return iu
}

// SetNillableExternalUserID sets the "external_user_id" field if the given value is not nil.
func (iu *InterviewUpdate) SetNillableExternalUserID(s *string) *InterviewUpdate {
	if s != nil {
		iu.SetExternalUserID(*s)
	}
	return iu
}

// ClearExternalUserID clears the value of the "external_user_id" field.
func (iu *InterviewUpdate) ClearExternalUserID() *InterviewUpdate {
	iu.mutation.ClearExternalUserID()
	return iu
}

// SetJobID sets the "job_id" field.
func (iu *InterviewUpdate) SetJobID(u uuid.UUID) *InterviewUpdate {
	iu.mutation.SetJobID(u)
	return iu
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (iu *InterviewUpdate) SetNillableJobID(u *uuid.UUID) *InterviewUpdate {
	if u != nil {
		iu.SetJobID(*u)
	}
	return iu
}

// ClearJobID clears the value of the "job_id" field.
func (iu *InterviewUpdate) ClearJobID() *InterviewUpdate {
	iu.mutation.ClearJobID()
	return iu
}

// SetStatus sets the "status" field.
func (iu *InterviewUpdate) SetStatus(i interview.Status) *InterviewUpdate {
	iu.mutation.SetStatus(i)
	return iu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iu *InterviewUpdate) SetNillableStatus(i *interview.Status) *InterviewUpdate {
	if i != nil {
		iu.SetStatus(*i)
	}
	return iu
}

// SetCurrentIndex sets the "current_index" field.
func (iu *InterviewUpdate) SetCurrentIndex(i int) *InterviewUpdate {
	iu.mutation.ResetCurrentIndex()
	iu.mutation.SetCurrentIndex(i)
	return iu
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (iu *InterviewUpdate) SetNillableCurrentIndex(i *int) *InterviewUpdate {
	if i != nil {
		iu.SetCurrentIndex(*i)
	}
	return iu
}

// AddCurrentIndex adds i to the "current_index" field.
func (iu *InterviewUpdate) AddCurrentIndex(i int) *InterviewUpdate {
	iu.mutation.AddCurrentIndex(i)
	return iu
}

// SetQuestions sets the "questions" field.
func (iu *InterviewUpdate) SetQuestions(s []string) *InterviewUpdate {
	iu.mutation.SetQuestions(s)
	return iu
}

// AppendQuestions appends s to the "questions" field.
func (iu *InterviewUpdate) AppendQuestions(s []string) *InterviewUpdate {
	iu.mutation.AppendQuestions(s)
	return iu
}

// ClearQuestions clears the value of the "questions" field.
func (iu *InterviewUpdate) ClearQuestions() *InterviewUpdate {
	iu.mutation.ClearQuestions()
	return iu
}

// SetAnswers sets the "answers" field.
func (iu *InterviewUpdate) SetAnswers(sa []schema.InterviewAnswer) *InterviewUpdate {
	iu.mutation.SetAnswers(sa)
	return iu
}

// AppendAnswers appends sa to the "answers" field.
func (iu *InterviewUpdate) AppendAnswers(sa []schema.InterviewAnswer) *InterviewUpdate {
	iu.mutation.AppendAnswers(sa)
	return iu
}

// ClearAnswers clears the value of the "answers" field.
func (iu *InterviewUpdate) ClearAnswers() *InterviewUpdate {
	iu.mutation.ClearAnswers()
	return iu
}

// SetScore sets the "score" field.
func (iu *InterviewUpdate) SetScore(f float64) *InterviewUpdate {
	iu.mutation.ResetScore()
	iu.mutation.SetScore(f)
	return iu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (iu *InterviewUpdate) SetNillableScore(f *float64) *InterviewUpdate {
	if f != nil {
		iu.SetScore(*f)
	}
	return iu
}

// AddScore adds f to the "score" field.
func (iu *InterviewUpdate) AddScore(f float64) *InterviewUpdate {
	iu.mutation.AddScore(f)
	return iu
}

// ClearScore clears the value of the "score" field.
func (iu *InterviewUpdate) ClearScore() *InterviewUpdate {
	iu.mutation.ClearScore()
	return iu
}

// SetFeedback sets the "feedback" field.
func (iu *InterviewUpdate) SetFeedback(s string) *InterviewUpdate {
	iu.mutation.SetFeedback(s)
	return iu
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (iu *InterviewUpdate) SetNillableFeedback(s *string) *InterviewUpdate {
	if s != nil {
		iu.SetFeedback(*s)
	}
	return iu
}

// SetCompletedAt sets the "completed_at" field.
func (iu *InterviewUpdate) SetCompletedAt(t time.Time) *InterviewUpdate {
	iu.mutation.SetCompletedAt(t)
	return iu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (iu *InterviewUpdate) SetNillableCompletedAt(t *time.Time) *InterviewUpdate {
	if t != nil {
		iu.SetCompletedAt(*t)
	}
	return iu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (iu *InterviewUpdate) ClearCompletedAt() *InterviewUpdate {
	iu.mutation.ClearCompletedAt()
	return iu
}

// SetUpdatedAt sets the "updated_at" field.
func (iu *InterviewUpdate) SetUpdatedAt(t time.Time) *InterviewUpdate {
	iu.mutation.SetUpdatedAt(t)
	return iu
}

// Mutation returns the InterviewMutation object of the builder.
func (iu *InterviewUpdate) Mutation() *InterviewMutation {
	return iu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *InterviewUpdate) Save(ctx context.Context) (int, error) {
	iu.defaults()
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *InterviewUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *InterviewUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *InterviewUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iu *InterviewUpdate) defaults() {
	if _, ok := iu.mutation.UpdatedAt(); !ok {
		v := interview.UpdateDefaultUpdatedAt()
		iu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *InterviewUpdate) check() error {
	if v, ok := iu.mutation.Status(); ok {
		if err := interview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interview.status": %w`, err)}
		}
	}
	if v, ok := iu.mutation.CurrentIndex(); ok {
		if err := interview.CurrentIndexValidator(v); err != nil {
			return &ValidationError{Name: "current_index", err: fmt.Errorf(`ent: validator failed for field "Interview.current_index": %w`, err)}
		}
	}
	return nil
}

func (iu *InterviewUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(interview.Table, interview.Columns, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeUUID))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.UserID(); ok {
		_spec.SetField(interview.FieldUserID, field.TypeUUID, value)
	}
	if iu.mutation.UserIDCleared() {
		_spec.ClearField(interview.FieldUserID, field.TypeUUID)
	}
	if value, ok := iu.mutation.ExternalUserID(); ok {
		_spec.SetField(interview.FieldExternalUserID, field.TypeString, value)
	}
	if iu.mutation.ExternalUserIDCleared() {
		_spec.ClearField(interview.FieldExternalUserID, field.TypeString)
	}
	if value, ok := iu.mutation.JobID(); ok {
		_spec.SetField(interview.FieldJobID, field.TypeUUID, value)
	}
	if iu.mutation.JobIDCleared() {
		_spec.ClearField(interview.FieldJobID, field.TypeUUID)
	}
	if value, ok := iu.mutation.Status(); ok {
		_spec.SetField(interview.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := iu.mutation.CurrentIndex(); ok {
		_spec.SetField(interview.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := iu.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(interview.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := iu.mutation.Questions(); ok {
		_spec.SetField(interview.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interview.FieldQuestions, value)
		})
	}
	if iu.mutation.QuestionsCleared() {
		_spec.ClearField(interview.FieldQuestions, field.TypeJSON)
	}
	if value, ok := iu.mutation.Answers(); ok {
		_spec.SetField(interview.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interview.FieldAnswers, value)
		})
	}
	if iu.mutation.AnswersCleared() {
		_spec.ClearField(interview.FieldAnswers, field.TypeJSON)
	}
	if value, ok := iu.mutation.Score(); ok {
		_spec.SetField(interview.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.AddedScore(); ok {
		_spec.AddField(interview.FieldScore, field.TypeFloat64, value)
	}
	if iu.mutation.ScoreCleared() {
		_spec.ClearField(interview.FieldScore, field.TypeFloat64)
	}
	if value, ok := iu.mutation.Feedback(); ok {
		_spec.SetField(interview.FieldFeedback, field.TypeString, value)
	}
	if value, ok := iu.mutation.CompletedAt(); ok {
		_spec.SetField(interview.FieldCompletedAt, field.TypeTime, value)
	}
	if iu.mutation.CompletedAtCleared() {
		_spec.ClearField(interview.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := iu.mutation.UpdatedAt(); ok {
		_spec.SetField(interview.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// InterviewUpdateOne is the builder for updating a single Interview entity.
type InterviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewMutation
}

// SetUserID sets the "user_id" field.
func (iuo *InterviewUpdateOne) SetUserID(u uuid.UUID) *InterviewUpdateOne {
	iuo.mutation.SetUserID(u)
	return iuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (iuo *InterviewUpdateOne) SetNillableUserID(u *uuid.UUID) *InterviewUpdateOne {
	if u != nil {
		iuo.SetUserID(*u)
	}
	return iuo
}

// ClearUserID clears the value of the "user_id" field.
func (iuo *InterviewUpdateOne) ClearUserID() *InterviewUpdateOne {
	iuo.mutation.ClearUserID()
	return iuo
}

// SetExternalUserID sets the "external_user_id" field.
func (iuo *InterviewUpdateOne) SetExternalUserID(s string) *InterviewUpdateOne {
	iuo.mutation.SetExternalUserID(s)
	return iuo
}

// SetNillableExternalUserID sets the "external_user_id" field if the given value is not nil.
func (iuo *InterviewUpdateOne) SetNillableExternalUserID(s *string) *InterviewUpdateOne {
	if s != nil {
		iuo.SetExternalUserID(*s)
	}
	return iuo
}

// ClearExternalUserID clears the value of the "external_user_id" field.
func (iuo *InterviewUpdateOne) ClearExternalUserID() *InterviewUpdateOne {
	iuo.mutation.ClearExternalUserID()
	return iuo
}

// SetJobID sets the "job_id" field.
func (iuo *InterviewUpdateOne) SetJobID(u uuid.UUID) *InterviewUpdateOne {
	iuo.mutation.SetJobID(u)
	return iuo
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (iuo *InterviewUpdateOne) SetNillableJobID(u *uuid.UUID) *InterviewUpdateOne {
	if u != nil {
		iuo.SetJobID(*u)
	}
	return iuo
}

// ClearJobID clears the value of the "job_id" field.
func (iuo *InterviewUpdateOne) ClearJobID() *InterviewUpdateOne {
	iuo.mutation.ClearJobID()
	return iuo
}

// SetStatus sets the "status" field.
func (iuo *InterviewUpdateOne) SetStatus(i interview.Status) *InterviewUpdateOne {
	iuo.mutation.SetStatus(i)
	return iuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iuo *InterviewUpdateOne) SetNillableStatus(i *interview.Status) *InterviewUpdateOne {
	if i != nil {
		iuo.SetStatus(*i)
	}
	return iuo
}

// SetCurrentIndex sets the "current_index" field.
func (iuo *InterviewUpdateOne) SetCurrentIndex(i int) *InterviewUpdateOne {
	iuo.mutation.ResetCurrentIndex()
	iuo.mutation.SetCurrentIndex(i)
	return iuo
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (iuo *InterviewUpdateOne) SetNillableCurrentIndex(i *int) *InterviewUpdateOne {
	if i != nil {
		iuo.SetCurrentIndex(*i)
	}
	return iuo
}

// AddCurrentIndex adds i to the "current_index" field.
func (iuo *InterviewUpdateOne) AddCurrentIndex(i int) *InterviewUpdateOne {
	iuo.mutation.AddCurrentIndex(i)
	return iuo
}

// SetQuestions sets the "questions" field.
func (iuo *InterviewUpdateOne) SetQuestions(s []string) *InterviewUpdateOne {
	iuo.mutation.SetQuestions(s)
	return iuo
}

// AppendQuestions appends s to the "questions" field.
func (iuo *InterviewUpdateOne) AppendQuestions(s []string) *InterviewUpdateOne {
	iuo.mutation.AppendQuestions(s)
	return iuo
}

// ClearQuestions clears the value of the "questions" field.
func (iuo *InterviewUpdateOne) ClearQuestions() *InterviewUpdateOne {
	iuo.mutation.ClearQuestions()
	return iuo
}

// SetAnswers sets the "answers" field.
func (iuo *InterviewUpdateOne) SetAnswers(sa []schema.InterviewAnswer) *InterviewUpdateOne {
	iuo.mutation.SetAnswers(sa)
	return iuo
}

// AppendAnswers appends sa to the "answers" field.
func (iuo *InterviewUpdateOne) AppendAnswers(sa []schema.InterviewAnswer) *InterviewUpdateOne {
	iuo.mutation.AppendAnswers(sa)
	return iuo
}

// ClearAnswers clears the value of the "answers" field.
func (iuo *InterviewUpdateOne) ClearAnswers() *InterviewUpdateOne {
	iuo.mutation.ClearAnswers()
	return iuo
}

// SetScore sets the "score" field.
func (iuo *InterviewUpdateOne) SetScore(f float64) *InterviewUpdateOne {
	iuo.mutation.ResetScore()
	iuo.mutation.SetScore(f)
	return iuo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (iuo *InterviewUpdateOne) SetNillableScore(f *float64) *InterviewUpdateOne {
	if f != nil {
		iuo.SetScore(*f)
	}
	return iuo
}

// AddScore adds f to the "score" field.
func (iuo *InterviewUpdateOne) AddScore(f float64) *InterviewUpdateOne {
	iuo.mutation.AddScore(f)
	return iuo
}

// ClearScore clears the value of the "score" field.
func (iuo *InterviewUpdateOne) ClearScore() *InterviewUpdateOne {
	iuo.mutation.ClearScore()
	return iuo
}

// SetFeedback sets the "feedback" field.
func (iuo *InterviewUpdateOne) SetFeedback(s string) *InterviewUpdateOne {
	iuo.mutation.SetFeedback(s)
	return iuo
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (iuo *InterviewUpdateOne) SetNillableFeedback(s *string) *InterviewUpdateOne {
	if s != nil {
		iuo.SetFeedback(*s)
	}
	return iuo
}

// SetCompletedAt sets the "completed_at" field.
func (iuo *InterviewUpdateOne) SetCompletedAt(t time.Time) *InterviewUpdateOne {
	iuo.mutation.SetCompletedAt(t)
	return iuo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (iuo *InterviewUpdateOne) SetNillableCompletedAt(t *time.Time) *InterviewUpdateOne {
	if t != nil {
		iuo.SetCompletedAt(*t)
	}
	return iuo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (iuo *InterviewUpdateOne) ClearCompletedAt() *InterviewUpdateOne {
	iuo.mutation.ClearCompletedAt()
	return iuo
}

// SetUpdatedAt sets the "updated_at" field.
func (iuo *InterviewUpdateOne) SetUpdatedAt(t time.Time) *InterviewUpdateOne {
	iuo.mutation.SetUpdatedAt(t)
	return iuo
}

// Mutation returns the InterviewMutation object of the builder.
func (iuo *InterviewUpdateOne) Mutation() *InterviewMutation {
	return iuo.mutation
}

// Where appends a list predicates to the InterviewUpdate builder.
func (iuo *InterviewUpdateOne) Where(ps ...predicate.Interview) *InterviewUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *InterviewUpdateOne) Select(field string, fields ...string) *InterviewUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Interview entity.
func (iuo *InterviewUpdateOne) Save(ctx context.Context) (*Interview, error) {
	iuo.defaults()
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *InterviewUpdateOne) SaveX(ctx context.Context) *Interview {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *InterviewUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *InterviewUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iuo *InterviewUpdateOne) defaults() {
	if _, ok := iuo.mutation.UpdatedAt(); !ok {
		v := interview.UpdateDefaultUpdatedAt()
		iuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *InterviewUpdateOne) check() error {
	if v, ok := iuo.mutation.Status(); ok {
		if err := interview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interview.status": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.CurrentIndex(); ok {
		if err := interview.CurrentIndexValidator(v); err != nil {
			return &ValidationError{Name: "current_index", err: fmt.Errorf(`ent: validator failed for field "Interview.current_index": %w`, err)}
		}
	}
	return nil
}

func (iuo *InterviewUpdateOne) sqlSave(ctx context.Context) (_node *Interview, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interview.Table, interview.Columns, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeUUID))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Interview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interview.FieldID)
		for _, f := range fields {
			if !interview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.UserID(); ok {
		_spec.SetField(interview.FieldUserID, field.TypeUUID, value)
	}
	if iuo.mutation.UserIDCleared() {
		_spec.ClearField(interview.FieldUserID, field.TypeUUID)
	}
	if value, ok := iuo.mutation.ExternalUserID(); ok {
		_spec.SetField(interview.FieldExternalUserID, field.TypeString, value)
	}
	if iuo.mutation.ExternalUserIDCleared() {
		_spec.ClearField(interview.FieldExternalUserID, field.TypeString)
	}
	if value, ok := iuo.mutation.JobID(); ok {
		_spec.SetField(interview.FieldJobID, field.TypeUUID, value)
	}
	if iuo.mutation.JobIDCleared() {
		_spec.ClearField(interview.FieldJobID, field.TypeUUID)
	}
	if value, ok := iuo.mutation.Status(); ok {
		_spec.SetField(interview.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := iuo.mutation.CurrentIndex(); ok {
		_spec.SetField(interview.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(interview.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.Questions(); ok {
		_spec.SetField(interview.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interview.FieldQuestions, value)
		})
	}
	if iuo.mutation.QuestionsCleared() {
		_spec.ClearField(interview.FieldQuestions, field.TypeJSON)
	}
	if value, ok := iuo.mutation.Answers(); ok {
		_spec.SetField(interview.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interview.FieldAnswers, value)
		})
	}
	if iuo.mutation.AnswersCleared() {
		_spec.ClearField(interview.FieldAnswers, field.TypeJSON)
	}
	if value, ok := iuo.mutation.Score(); ok {
		_spec.SetField(interview.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.AddedScore(); ok {
		_spec.AddField(interview.FieldScore, field.TypeFloat64, value)
	}
	if iuo.mutation.ScoreCleared() {
		_spec.ClearField(interview.FieldScore, field.TypeFloat64)
	}
	if value, ok := iuo.mutation.Feedback(); ok {
		_spec.SetField(interview.FieldFeedback, field.TypeString, value)
	}
	if value, ok := iuo.mutation.CompletedAt(); ok {
		_spec.SetField(interview.FieldCompletedAt, field.TypeTime, value)
	}
	if iuo.mutation.CompletedAtCleared() {
		_spec.ClearField(interview.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := iuo.mutation.UpdatedAt(); ok {
		_spec.SetField(interview.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Interview{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
