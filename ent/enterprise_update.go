// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"talentbridge/ent/enterprise"
	"talentbridge/ent/job"
	"talentbridge/ent/predicate"
	"talentbridge/ent/user"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// EnterpriseUpdate is the builder for updating Enterprise entities.
type EnterpriseUpdate struct {
	config
	hooks    []Hook
	mutation *EnterpriseMutation
}

// Where appends a list predicates to the EnterpriseUpdate builder.
func (eu *EnterpriseUpdate) Where(ps ...predicate.Enterprise) *EnterpriseUpdate {
	eu.mutation.Where(ps...)
	return eu
}

// SetName sets the "name" field.
func (eu *EnterpriseUpdate) SetName(s string) *EnterpriseUpdate {
	eu.mutation.SetName(s)
	return eu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (eu *EnterpriseUpdate) SetNillableName(s *string) *EnterpriseUpdate {
	if s != nil {
		eu.SetName(*s)
	}
	return eu
}

// SetIndustry sets the "industry" field.
func (eu *EnterpriseUpdate) SetIndustry(s string) *EnterpriseUpdate {
	eu.mutation.SetIndustry(s)
	return eu
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (eu *EnterpriseUpdate) SetNillableIndustry(s *string) *EnterpriseUpdate {
	if s != nil {
		eu.SetIndustry(*s)
	}
	return eu
}

// ClearIndustry clears the value of the "industry" field.
func (eu *EnterpriseUpdate) ClearIndustry() *EnterpriseUpdate {
	eu.mutation.ClearIndustry()
	return eu
}

// SetDescription sets the "description" field.
func (eu *EnterpriseUpdate) SetDescription(s string) *EnterpriseUpdate {
	eu.mutation.SetDescription(s)
	return eu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (eu *EnterpriseUpdate) SetNillableDescription(s *string) *EnterpriseUpdate {
	if s != nil {
		eu.SetDescription(*s)
	}
	return eu
}

// ClearDescription clears the value of the "description" field.
func (eu *EnterpriseUpdate) ClearDescription() *EnterpriseUpdate {
	eu.mutation.ClearDescription()
	return eu
}

// SetUpdatedAt sets the "updated_at" field.
func (eu *EnterpriseUpdate) SetUpdatedAt(t time.Time) *EnterpriseUpdate {
	eu.mutation.SetUpdatedAt(t)
	return eu
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (eu *EnterpriseUpdate) AddJobIDs(ids ...uuid.UUID) *EnterpriseUpdate {
	eu.mutation.AddJobIDs(ids...)
	return eu
}

// AddJobs adds the "jobs" edges to the Job entity.
func (eu *EnterpriseUpdate) AddJobs(j ...*Job) *EnterpriseUpdate {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return eu.AddJobIDs(ids...)
}

// AddMemberIDs adds the "members" edge to the User entity by IDs.
func (eu *EnterpriseUpdate) AddMemberIDs(ids ...uuid.UUID) *EnterpriseUpdate {
	eu.mutation.AddMemberIDs(ids...)
	return eu
}

// AddMembers adds the "members" edges to the User entity.
func (eu *EnterpriseUpdate) AddMembers(u ...*User) *EnterpriseUpdate {
	ids := make([]uuid.UUID, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return eu.AddMemberIDs(ids...)
}

// Mutation returns the EnterpriseMutation object of the builder.
func (eu *EnterpriseUpdate) Mutation() *EnterpriseMutation {
	return eu.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (eu *EnterpriseUpdate) ClearJobs() *EnterpriseUpdate {
	eu.mutation.ClearJobs()
	return eu
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (eu *EnterpriseUpdate) RemoveJobIDs(ids ...uuid.UUID) *EnterpriseUpdate {
	eu.mutation.RemoveJobIDs(ids...)
	return eu
}

// RemoveJobs removes "jobs" edges to Job entities.
func (eu *EnterpriseUpdate) RemoveJobs(j ...*Job) *EnterpriseUpdate {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return eu.RemoveJobIDs(ids...)
}

// ClearMembers clears all "members" edges to the User entity.
func (eu *EnterpriseUpdate) ClearMembers() *EnterpriseUpdate {
	eu.mutation.ClearMembers()
	return eu
}

// RemoveMemberIDs removes the "members" edge to User entities by IDs.
func (eu *EnterpriseUpdate) RemoveMemberIDs(ids ...uuid.UUID) *EnterpriseUpdate {
	eu.mutation.RemoveMemberIDs(ids...)
	return eu
}

// RemoveMembers removes "members" edges to User entities.
func (eu *EnterpriseUpdate) RemoveMembers(u ...*User) *EnterpriseUpdate {
	ids := make([]uuid.UUID, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return eu.RemoveMemberIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (eu *EnterpriseUpdate) Save(ctx context.Context) (int, error) {
	eu.defaults()
	return withHooks(ctx, eu.sqlSave, eu.mutation, eu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eu *EnterpriseUpdate) SaveX(ctx context.Context) int {
	affected, err := eu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (eu *EnterpriseUpdate) Exec(ctx context.Context) error {
	_, err := eu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eu *EnterpriseUpdate) ExecX(ctx context.Context) {
	if err := eu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (eu *EnterpriseUpdate) defaults() {
	if _, ok := eu.mutation.UpdatedAt(); !ok {
		v := enterprise.UpdateDefaultUpdatedAt()
		eu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (eu *EnterpriseUpdate) check() error {
	if v, ok := eu.mutation.Name(); ok {
		if err := enterprise.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Enterprise.name": %w`, err)}
		}
	}
	return nil
}

func (eu *EnterpriseUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := eu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(enterprise.Table, enterprise.Columns, sqlgraph.NewFieldSpec(enterprise.FieldID, field.TypeUUID))
	if ps := eu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := eu.mutation.Name(); ok {
		_spec.SetField(enterprise.FieldName, field.TypeString, value)
	}
	if value, ok := eu.mutation.Industry(); ok {
		_spec.SetField(enterprise.FieldIndustry, field.TypeString, value)
	}
	if eu.mutation.IndustryCleared() {
		_spec.ClearField(enterprise.FieldIndustry, field.TypeString)
	}
	if value, ok := eu.mutation.Description(); ok {
		_spec.SetField(enterprise.FieldDescription, field.TypeString, value)
	}
	if eu.mutation.DescriptionCleared() {
		_spec.ClearField(enterprise.FieldDescription, field.TypeString)
	}
	if value, ok := eu.mutation.UpdatedAt(); ok {
		_spec.SetField(enterprise.FieldUpdatedAt, field.TypeTime, value)
	}
	if eu.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.JobsTable,
			Columns: []string{enterprise.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eu.mutation.RemovedJobsIDs(); len(nodes) > 0 && !eu.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.JobsTable,
			Columns: []string{enterprise.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eu.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.JobsTable,
			Columns: []string{enterprise.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if eu.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.MembersTable,
			Columns: []string{enterprise.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eu.mutation.RemovedMembersIDs(); len(nodes) > 0 && !eu.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.MembersTable,
			Columns: []string{enterprise.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eu.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.MembersTable,
			Columns: []string{enterprise.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, eu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enterprise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	eu.mutation.done = true
	return n, nil
}

// EnterpriseUpdateOne is the builder for updating a single Enterprise entity.
type EnterpriseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnterpriseMutation
}

// SetName sets the "name" field.
func (euo *EnterpriseUpdateOne) SetName(s string) *EnterpriseUpdateOne {
	euo.mutation.SetName(s)
	return euo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (euo *EnterpriseUpdateOne) SetNillableName(s *string) *EnterpriseUpdateOne {
	if s != nil {
		euo.SetName(*s)
	}
	return euo
}

// SetIndustry sets the "industry" field.
func (euo *EnterpriseUpdateOne) SetIndustry(s string) *EnterpriseUpdateOne {
	euo.mutation.SetIndustry(s)
	return euo
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (euo *EnterpriseUpdateOne) SetNillableIndustry(s *string) *EnterpriseUpdateOne {
	if s != nil {
		euo.SetIndustry(*s)
	}
	return euo
}

// ClearIndustry clears the value of the "industry" field.
func (euo *EnterpriseUpdateOne) ClearIndustry() *EnterpriseUpdateOne {
	euo.mutation.ClearIndustry()
	return euo
}

// SetDescription sets the "description" field.
func (euo *EnterpriseUpdateOne) SetDescription(s string) *EnterpriseUpdateOne {
	euo.mutation.SetDescription(s)
	return euo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (euo *EnterpriseUpdateOne) SetNillableDescription(s *string) *EnterpriseUpdateOne {
	if s != nil {
		euo.SetDescription(*s)
	}
	return euo
}

// ClearDescription clears the value of the "description" field.
func (euo *EnterpriseUpdateOne) ClearDescription() *EnterpriseUpdateOne {
	euo.mutation.ClearDescription()
	return euo
}

// SetUpdatedAt sets the "updated_at" field.
func (euo *EnterpriseUpdateOne) SetUpdatedAt(t time.Time) *EnterpriseUpdateOne {
	euo.mutation.SetUpdatedAt(t)
	return euo
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (euo *EnterpriseUpdateOne) AddJobIDs(ids ...uuid.UUID) *EnterpriseUpdateOne {
	euo.mutation.AddJobIDs(ids...)
	return euo
}

// AddJobs adds the "jobs" edges to the Job entity.
func (euo *EnterpriseUpdateOne) AddJobs(j ...*Job) *EnterpriseUpdateOne {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return euo.AddJobIDs(ids...)
}

// AddMemberIDs adds the "members" edge to the User entity by IDs.
func (euo *EnterpriseUpdateOne) AddMemberIDs(ids ...uuid.UUID) *EnterpriseUpdateOne {
	euo.mutation.AddMemberIDs(ids...)
	return euo
}

// AddMembers adds the "members" edges to the User entity.
func (euo *EnterpriseUpdateOne) AddMembers(u ...*User) *EnterpriseUpdateOne {
	ids := make([]uuid.UUID, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return euo.AddMemberIDs(ids...)
}

// Mutation returns the EnterpriseMutation object of the builder.
func (euo *EnterpriseUpdateOne) Mutation() *EnterpriseMutation {
	return euo.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (euo *EnterpriseUpdateOne) ClearJobs() *EnterpriseUpdateOne {
	euo.mutation.ClearJobs()
	return euo
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (euo *EnterpriseUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *EnterpriseUpdateOne {
	euo.mutation.RemoveJobIDs(ids...)
	return euo
}

// RemoveJobs removes "jobs" edges to Job entities.
func (euo *EnterpriseUpdateOne) RemoveJobs(j ...*Job) *EnterpriseUpdateOne {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return euo.RemoveJobIDs(ids...)
}

// ClearMembers clears all "members" edges to the User entity.
func (euo *EnterpriseUpdateOne) ClearMembers() *EnterpriseUpdateOne {
	euo.mutation.ClearMembers()
	return euo
}

// RemoveMemberIDs removes the "members" edge to User entities by IDs.
func (euo *EnterpriseUpdateOne) RemoveMemberIDs(ids ...uuid.UUID) *EnterpriseUpdateOne {
	euo.mutation.RemoveMemberIDs(ids...)
	return euo
}

// RemoveMembers removes "members" edges to User entities.
func (euo *EnterpriseUpdateOne) RemoveMembers(u ...*User) *EnterpriseUpdateOne {
	ids := make([]uuid.UUID, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return euo.RemoveMemberIDs(ids...)
}

// Where appends a list predicates to the EnterpriseUpdate builder.
func (euo *EnterpriseUpdateOne) Where(ps ...predicate.Enterprise) *EnterpriseUpdateOne {
	euo.mutation.Where(ps...)
	return euo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (euo *EnterpriseUpdateOne) Select(field string, fields ...string) *EnterpriseUpdateOne {
	euo.fields = append([]string{field}, fields...)
	return euo
}

// Save executes the query and returns the updated Enterprise entity.
func (euo *EnterpriseUpdateOne) Save(ctx context.Context) (*Enterprise, error) {
	euo.defaults()
	return withHooks(ctx, euo.sqlSave, euo.mutation, euo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (euo *EnterpriseUpdateOne) SaveX(ctx context.Context) *Enterprise {
	node, err := euo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (euo *EnterpriseUpdateOne) Exec(ctx context.Context) error {
	_, err := euo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (euo *EnterpriseUpdateOne) ExecX(ctx context.Context) {
	if err := euo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (euo *EnterpriseUpdateOne) defaults() {
	if _, ok := euo.mutation.UpdatedAt(); !ok {
		v := enterprise.UpdateDefaultUpdatedAt()
		euo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (euo *EnterpriseUpdateOne) check() error {
	if v, ok := euo.mutation.Name(); ok {
		if err := enterprise.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Enterprise.name": %w`, err)}
		}
	}
	return nil
}

func (euo *EnterpriseUpdateOne) sqlSave(ctx context.Context) (_node *Enterprise, err error) {
	if err := euo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enterprise.Table, enterprise.Columns, sqlgraph.NewFieldSpec(enterprise.FieldID, field.TypeUUID))
	id, ok := euo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Enterprise.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := euo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enterprise.FieldID)
		for _, f := range fields {
			if !enterprise.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enterprise.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := euo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := euo.mutation.Name(); ok {
		_spec.SetField(enterprise.FieldName, field.TypeString, value)
	}
	if value, ok := euo.mutation.Industry(); ok {
		_spec.SetField(enterprise.FieldIndustry, field.TypeString, value)
	}
	if euo.mutation.IndustryCleared() {
		_spec.ClearField(enterprise.FieldIndustry, field.TypeString)
	}
	if value, ok := euo.mutation.Description(); ok {
		_spec.SetField(enterprise.FieldDescription, field.TypeString, value)
	}
	if euo.mutation.DescriptionCleared() {
		_spec.ClearField(enterprise.FieldDescription, field.TypeString)
	}
	if value, ok := euo.mutation.UpdatedAt(); ok {
		_spec.SetField(enterprise.FieldUpdatedAt, field.TypeTime, value)
	}
	if euo.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.JobsTable,
			Columns: []string{enterprise.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := euo.mutation.RemovedJobsIDs(); len(nodes) > 0 && !euo.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.JobsTable,
			Columns: []string{enterprise.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := euo.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.JobsTable,
			Columns: []string{enterprise.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if euo.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.MembersTable,
			Columns: []string{enterprise.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := euo.mutation.RemovedMembersIDs(); len(nodes) > 0 && !euo.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.MembersTable,
			Columns: []string{enterprise.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := euo.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enterprise.MembersTable,
			Columns: []string{enterprise.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Enterprise{config: euo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, euo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enterprise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	euo.mutation.done = true
	return _node, nil
}
