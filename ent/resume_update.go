// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"talentbridge/ent/predicate"
	"talentbridge/ent/resume"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ResumeUpdate is the builder for updating Resume entities.
type ResumeUpdate struct {
	config
	hooks    []Hook
	mutation *ResumeMutation
}

// Where appends a list predicates to the ResumeUpdate builder.
func (ru *ResumeUpdate) Where(ps ...predicate.Resume) *ResumeUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetUserID sets the "user_id" field.
func (ru *ResumeUpdate) SetUserID(u uuid.UUID) *ResumeUpdate {
	ru.mutation.SetUserID(u)
	return ru
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ru *ResumeUpdate) SetNillableUserID(u *uuid.UUID) *ResumeUpdate {
	if u != nil {
		ru.SetUserID(*u)
	}
	return ru
}

// ClearUserID clears the value of the "user_id" field.
func (ru *ResumeUpdate) ClearUserID() *ResumeUpdate {
	ru.mutation.ClearUserID()
	return ru
}

// SetExternalUserID sets the "external_user_id" field.
func (ru *ResumeUpdate) SetExternalUserID(s string) *ResumeUpdate {
	ru.mutation.SetExternalUserID(s)
	return ru
}

// SetNillableExternalUserID sets the "external_user_id" field if the given value is not nil.
func (ru *ResumeUpdate) SetNillableExternalUserID(s *string) *ResumeUpdate {
	if s != nil {
		ru.SetExternalUserID(*s)
	}
	return ru
}

// ClearExternalUserID clears the value of the "external_user_id" field.
func (ru *ResumeUpdate) ClearExternalUserID() *ResumeUpdate {
	ru.mutation.ClearExternalUserID()
	return ru
}

// SetResumeText sets the "resume_text" field.
func (ru *ResumeUpdate) SetResumeText(s string) *ResumeUpdate {
	ru.mutation.SetResumeText(s)
	return ru
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (ru *ResumeUpdate) SetNillableResumeText(s *string) *ResumeUpdate {
	if s != nil {
		ru.SetResumeText(*s)
	}
	return ru
}

// SetSkills sets the "skills" field.
func (ru *ResumeUpdate) SetSkills(s []string) *ResumeUpdate {
	ru.mutation.SetSkills(s)
	return ru
}

// AppendSkills appends s to the "skills" field.
func (ru *ResumeUpdate) AppendSkills(s []string) *ResumeUpdate {
	ru.mutation.AppendSkills(s)
	return ru
}

// ClearSkills clears the value of the "skills" field.
func (ru *ResumeUpdate) ClearSkills() *ResumeUpdate {
	ru.mutation.ClearSkills()
	return ru
}

// SetEducation sets the "education" field.
func (ru *ResumeUpdate) SetEducation(m []map[string]interface{}) *ResumeUpdate {
	ru.mutation.SetEducation(m)
	return ru
}

// AppendEducation appends m to the "education" field.
func (ru *ResumeUpdate) AppendEducation(m []map[string]interface{}) *ResumeUpdate {
	ru.mutation.AppendEducation(m)
	return ru
}

// ClearEducation clears the value of the "education" field.
func (ru *ResumeUpdate) ClearEducation() *ResumeUpdate {
	ru.mutation.ClearEducation()
	return ru
}

// SetExperience sets the "experience" field.
func (ru *ResumeUpdate) SetExperience(m []map[string]interface{}) *ResumeUpdate {
	ru.mutation.SetExperience(m)
	return ru
}

// AppendExperience appends m to the "experience" field.
func (ru *ResumeUpdate) AppendExperience(m []map[string]interface{}) *ResumeUpdate {
	ru.mutation.AppendExperience(m)
	return ru
}

// ClearExperience clears the value of the "experience" field.
func (ru *ResumeUpdate) ClearExperience() *ResumeUpdate {
	ru.mutation.ClearExperience()
	return ru
}

// SetContact sets the "contact" field.
func (ru *ResumeUpdate) SetContact(m map[string]interface{}) *ResumeUpdate {
	ru.mutation.SetContact(m)
	return ru
}

// ClearContact clears the value of the "contact" field.
func (ru *ResumeUpdate) ClearContact() *ResumeUpdate {
	ru.mutation.ClearContact()
	return ru
}

// SetUpdatedAt sets the "updated_at" field.
func (ru *ResumeUpdate) SetUpdatedAt(t time.Time) *ResumeUpdate {
	ru.mutation.SetUpdatedAt(t)
	return ru
}

// Mutation returns the ResumeMutation object of the builder.
func (ru *ResumeUpdate) Mutation() *ResumeMutation {
	return ru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *ResumeUpdate) Save(ctx context.Context) (int, error) {
	ru.defaults()
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *ResumeUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *ResumeUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *ResumeUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ru *ResumeUpdate) defaults() {
	if _, ok := ru.mutation.UpdatedAt(); !ok {
		v := resume.UpdateDefaultUpdatedAt()
		ru.mutation.SetUpdatedAt(v)
	}
}

func (ru *ResumeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(resume.Table, resume.Columns, sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.UserID(); ok {
		_spec.SetField(resume.FieldUserID, field.TypeUUID, value)
	}
	if ru.mutation.UserIDCleared() {
		_spec.ClearField(resume.FieldUserID, field.TypeUUID)
	}
	if value, ok := ru.mutation.ExternalUserID(); ok {
		_spec.SetField(resume.FieldExternalUserID, field.TypeString, value)
	}
	if ru.mutation.ExternalUserIDCleared() {
		_spec.ClearField(resume.FieldExternalUserID, field.TypeString)
	}
	if value, ok := ru.mutation.ResumeText(); ok {
		_spec.SetField(resume.FieldResumeText, field.TypeString, value)
	}
	if value, ok := ru.mutation.Skills(); ok {
		_spec.SetField(resume.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := ru.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resume.FieldSkills, value)
		})
	}
	if ru.mutation.SkillsCleared() {
		_spec.ClearField(resume.FieldSkills, field.TypeJSON)
	}
	if value, ok := ru.mutation.Education(); ok {
		_spec.SetField(resume.FieldEducation, field.TypeJSON, value)
	}
	if value, ok := ru.mutation.AppendedEducation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resume.FieldEducation, value)
		})
	}
	if ru.mutation.EducationCleared() {
		_spec.ClearField(resume.FieldEducation, field.TypeJSON)
	}
	if value, ok := ru.mutation.Experience(); ok {
		_spec.SetField(resume.FieldExperience, field.TypeJSON, value)
	}
	if value, ok := ru.mutation.AppendedExperience(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resume.FieldExperience, value)
		})
	}
	if ru.mutation.ExperienceCleared() {
		_spec.ClearField(resume.FieldExperience, field.TypeJSON)
	}
	if value, ok := ru.mutation.Contact(); ok {
		_spec.SetField(resume.FieldContact, field.TypeJSON, value)
	}
	if ru.mutation.ContactCleared() {
		_spec.ClearField(resume.FieldContact, field.TypeJSON)
	}
	if value, ok := ru.mutation.UpdatedAt(); ok {
		_spec.SetField(resume.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resume.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// ResumeUpdateOne is the builder for updating a single Resume entity.
type ResumeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResumeMutation
}

// SetUserID sets the "user_id" field.
func (ruo *ResumeUpdateOne) SetUserID(u uuid.UUID) *ResumeUpdateOne {
	ruo.mutation.SetUserID(u)
	return ruo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ruo *ResumeUpdateOne) SetNillableUserID(u *uuid.UUID) *ResumeUpdateOne {
	if u != nil {
		ruo.SetUserID(*u)
	}
	return ruo
}

// ClearUserID clears the value of the "user_id" field.
func (ruo *ResumeUpdateOne) ClearUserID() *ResumeUpdateOne {
	ruo.mutation.ClearUserID()
	return ruo
}

// SetExternalUserID sets the "external_user_id" field.
func (ruo *ResumeUpdateOne) SetExternalUserID(s string) *ResumeUpdateOne {
	ruo.mutation.SetExternalUserID(s)
	return ruo
}

// SetNillableExternalUserID sets the "external_user_id" field if the given value is not nil.
func (ruo *ResumeUpdateOne) SetNillableExternalUserID(s *string) *ResumeUpdateOne {
	if s != nil {
		ruo.SetExternalUserID(*s)
	}
	return ruo
}

// ClearExternalUserID clears the value of the "external_user_id" field.
func (ruo *ResumeUpdateOne) ClearExternalUserID() *ResumeUpdateOne {
	ruo.mutation.ClearExternalUserID()
	return ruo
}

// SetResumeText sets the "resume_text" field.
func (ruo *ResumeUpdateOne) SetResumeText(s string) *ResumeUpdateOne {
	ruo.mutation.SetResumeText(s)
	return ruo
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (ruo *ResumeUpdateOne) SetNillableResumeText(s *string) *ResumeUpdateOne {
	if s != nil {
		ruo.SetResumeText(*s)
	}
	return ruo
}

// SetSkills sets the "skills" field.
func (ruo *ResumeUpdateOne) SetSkills(s []string) *ResumeUpdateOne {
	ruo.mutation.SetSkills(s)
	return ruo
}

// AppendSkills appends s to the "skills" field.
func (ruo *ResumeUpdateOne) AppendSkills(s []string) *ResumeUpdateOne {
	ruo.mutation.AppendSkills(s)
	return ruo
}

// ClearSkills clears the value of the "skills" field.
func (ruo *ResumeUpdateOne) ClearSkills() *ResumeUpdateOne {
	ruo.mutation.ClearSkills()
	return ruo
}

// SetEducation sets the "education" field.
func (ruo *ResumeUpdateOne) SetEducation(m []map[string]interface{}) *ResumeUpdateOne {
	ruo.mutation.SetEducation(m)
	return ruo
}

// AppendEducation appends m to the "education" field.
func (ruo *ResumeUpdateOne) AppendEducation(m []map[string]interface{}) *ResumeUpdateOne {
	ruo.mutation.AppendEducation(m)
	return ruo
}

// ClearEducation clears the value of the "education" field.
func (ruo *ResumeUpdateOne) ClearEducation() *ResumeUpdateOne {
	ruo.mutation.ClearEducation()
	return ruo
}

// SetExperience sets the "experience" field.
func (ruo *ResumeUpdateOne) SetExperience(m []map[string]interface{}) *ResumeUpdateOne {
	ruo.mutation.SetExperience(m)
	return ruo
}

// AppendExperience appends m to the "experience" field.
func (ruo *ResumeUpdateOne) AppendExperience(m []map[string]interface{}) *ResumeUpdateOne {
	ruo.mutation.AppendExperience(m)
	return ruo
}

// ClearExperience clears the value of the "experience" field.
func (ruo *ResumeUpdateOne) ClearExperience() *ResumeUpdateOne {
	ruo.mutation.ClearExperience()
	return ruo
}

// SetContact sets the "contact" field.
func (ruo *ResumeUpdateOne) SetContact(m map[string]interface{}) *ResumeUpdateOne {
	ruo.mutation.SetContact(m)
	return ruo
}

// ClearContact clears the value of the "contact" field.
func (ruo *ResumeUpdateOne) ClearContact() *ResumeUpdateOne {
	ruo.mutation.ClearContact()
	return ruo
}

// SetUpdatedAt sets the "updated_at" field.
func (ruo *ResumeUpdateOne) SetUpdatedAt(t time.Time) *ResumeUpdateOne {
	ruo.mutation.SetUpdatedAt(t)
	return ruo
}

// Mutation returns the ResumeMutation object of the builder.
func (ruo *ResumeUpdateOne) Mutation() *ResumeMutation {
	return ruo.mutation
}

// Where appends a list predicates to the ResumeUpdate builder.
func (ruo *ResumeUpdateOne) Where(ps ...predicate.Resume) *ResumeUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *ResumeUpdateOne) Select(field string, fields ...string) *ResumeUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Resume entity.
func (ruo *ResumeUpdateOne) Save(ctx context.Context) (*Resume, error) {
	ruo.defaults()
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *ResumeUpdateOne) SaveX(ctx context.Context) *Resume {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *ResumeUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *ResumeUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ruo *ResumeUpdateOne) defaults() {
	if _, ok := ruo.mutation.UpdatedAt(); !ok {
		v := resume.UpdateDefaultUpdatedAt()
		ruo.mutation.SetUpdatedAt(v)
	}
}

func (ruo *ResumeUpdateOne) sqlSave(ctx context.Context) (_node *Resume, err error) {
	_spec := sqlgraph.NewUpdateSpec(resume.Table, resume.Columns, sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Resume.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resume.FieldID)
		for _, f := range fields {
			if !resume.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resume.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.UserID(); ok {
		_spec.SetField(resume.FieldUserID, field.TypeUUID, value)
	}
	if ruo.mutation.UserIDCleared() {
		_spec.ClearField(resume.FieldUserID, field.TypeUUID)
	}
	if value, ok := ruo.mutation.ExternalUserID(); ok {
		_spec.SetField(resume.FieldExternalUserID, field.TypeString, value)
	}
	if ruo.mutation.ExternalUserIDCleared() {
		_spec.ClearField(resume.FieldExternalUserID, field.TypeString)
	}
	if value, ok := ruo.mutation.ResumeText(); ok {
		_spec.SetField(resume.FieldResumeText, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Skills(); ok {
		_spec.SetField(resume.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := ruo.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resume.FieldSkills, value)
		})
	}
	if ruo.mutation.SkillsCleared() {
		_spec.ClearField(resume.FieldSkills, field.TypeJSON)
	}
	if value, ok := ruo.mutation.Education(); ok {
		_spec.SetField(resume.FieldEducation, field.TypeJSON, value)
	}
	if value, ok := ruo.mutation.AppendedEducation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resume.FieldEducation, value)
		})
	}
	if ruo.mutation.EducationCleared() {
		_spec.ClearField(resume.FieldEducation, field.TypeJSON)
	}
	if value, ok := ruo.mutation.Experience(); ok {
		_spec.SetField(resume.FieldExperience, field.TypeJSON, value)
	}
	if value, ok := ruo.mutation.AppendedExperience(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resume.FieldExperience, value)
		})
	}
	if ruo.mutation.ExperienceCleared() {
		_spec.ClearField(resume.FieldExperience, field.TypeJSON)
	}
	if value, ok := ruo.mutation.Contact(); ok {
		_spec.SetField(resume.FieldContact, field.TypeJSON, value)
	}
	if ruo.mutation.ContactCleared() {
		_spec.ClearField(resume.FieldContact, field.TypeJSON)
	}
	if value, ok := ruo.mutation.UpdatedAt(); ok {
		_spec.SetField(resume.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Resume{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resume.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
