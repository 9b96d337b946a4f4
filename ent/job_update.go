// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"talentbridge/ent/application"
	"talentbridge/ent/job"
	"talentbridge/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (ju *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	ju.mutation.Where(ps...)
	return ju
}

// SetTitle sets the "title" field.
func (ju *JobUpdate) SetTitle(s string) *JobUpdate {
	ju.mutation.SetTitle(s)
	return ju
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ju *JobUpdate) SetNillableTitle(s *string) *JobUpdate {
	if s != nil {
		ju.SetTitle(*s)
	}
	return ju
}

// ClearTitle clears the value of the "title" field.
func (ju *JobUpdate) ClearTitle() *JobUpdate {
	ju.mutation.ClearTitle()
	return ju
}

// SetDescription sets the "description" field.
func (ju *JobUpdate) SetDescription(s string) *JobUpdate {
	ju.mutation.SetDescription(s)
	return ju
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ju *JobUpdate) SetNillableDescription(s *string) *JobUpdate {
	if s != nil {
		ju.SetDescription(*s)
	}
	return ju
}

// ClearDescription clears the value of the "description" field.
func (ju *JobUpdate) ClearDescription() *JobUpdate {
	ju.mutation.ClearDescription()
	return ju
}

// SetLocation sets the "location" field.
func (ju *JobUpdate) SetLocation(s string) *JobUpdate {
	ju.mutation.SetLocation(s)
	return ju
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (ju *JobUpdate) SetNillableLocation(s *string) *JobUpdate {
	if s != nil {
		ju.SetLocation(*s)
	}
	return ju
}

// ClearLocation clears the value of the "location" field.
func (ju *JobUpdate) ClearLocation() *JobUpdate {
	ju.mutation.ClearLocation()
	return ju
}

// SetSalaryRange sets the "salary_range" field.
func (ju *JobUpdate) SetSalaryRange(s string) *JobUpdate {
	ju.mutation.SetSalaryRange(s)
	return ju
}

// SetNillableSalaryRange sets the "salary_range" field if the given value is not nil.
func (ju *JobUpdate) SetNillableSalaryRange(s *string) *JobUpdate {
	if s != nil {
		ju.SetSalaryRange(*s)
	}
	return ju
}

// ClearSalaryRange clears the value of the "salary_range" field.
func (ju *JobUpdate) ClearSalaryRange() *JobUpdate {
	ju.mutation.ClearSalaryRange()
	return ju
}

// SetStatus sets the "status" field.
func (ju *JobUpdate) SetStatus(j job.Status) *JobUpdate {
	ju.mutation.SetStatus(j)
	return ju
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ju *JobUpdate) SetNillableStatus(j *job.Status) *JobUpdate {
	if j != nil {
		ju.SetStatus(*j)
	}
	return ju
}

// SetPublishedAt sets the "published_at" field.
func (ju *JobUpdate) SetPublishedAt(t time.Time) *JobUpdate {
	ju.mutation.SetPublishedAt(t)
	return ju
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (ju *JobUpdate) SetNillablePublishedAt(t *time.Time) *JobUpdate {
	if t != nil {
		ju.SetPublishedAt(*t)
	}
	return ju
}

// ClearPublishedAt clears the value of the "published_at" field.
func (ju *JobUpdate) ClearPublishedAt() *JobUpdate {
	ju.mutation.ClearPublishedAt()
	return ju
}

// SetUpdatedAt sets the "updated_at" field.
func (ju *JobUpdate) SetUpdatedAt(t time.Time) *JobUpdate {
	ju.mutation.SetUpdatedAt(t)
	return ju
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (ju *JobUpdate) AddApplicationIDs(ids ...uuid.UUID) *JobUpdate {
	ju.mutation.AddApplicationIDs(ids...)
	return ju
}

// AddApplications adds the "applications" edges to the Application entity.
func (ju *JobUpdate) AddApplications(a ...*Application) *JobUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ju.AddApplicationIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (ju *JobUpdate) Mutation() *JobMutation {
	return ju.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (ju *JobUpdate) ClearApplications() *JobUpdate {
	ju.mutation.ClearApplications()
	return ju
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (ju *JobUpdate) RemoveApplicationIDs(ids ...uuid.UUID) *JobUpdate {
	ju.mutation.RemoveApplicationIDs(ids...)
	return ju
}

// RemoveApplications removes "applications" edges to Application entities.
func (ju *JobUpdate) RemoveApplications(a ...*Application) *JobUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ju.RemoveApplicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ju *JobUpdate) Save(ctx context.Context) (int, error) {
	ju.defaults()
	return withHooks(ctx, ju.sqlSave, ju.mutation, ju.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ju *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := ju.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ju *JobUpdate) Exec(ctx context.Context) error {
	_, err := ju.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ju *JobUpdate) ExecX(ctx context.Context) {
	if err := ju.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ju *JobUpdate) defaults() {
	if _, ok := ju.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		ju.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ju *JobUpdate) check() error {
	if v, ok := ju.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if ju.mutation.EnterpriseCleared() && len(ju.mutation.EnterpriseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.enterprise"`)
	}
	return nil
}

func (ju *JobUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ju.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := ju.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ju.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if ju.mutation.TitleCleared() {
		_spec.ClearField(job.FieldTitle, field.TypeString)
	}
	if value, ok := ju.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
	}
	if ju.mutation.DescriptionCleared() {
		_spec.ClearField(job.FieldDescription, field.TypeString)
	}
	if value, ok := ju.mutation.Location(); ok {
		_spec.SetField(job.FieldLocation, field.TypeString, value)
	}
	if ju.mutation.LocationCleared() {
		_spec.ClearField(job.FieldLocation, field.TypeString)
	}
	if value, ok := ju.mutation.SalaryRange(); ok {
		_spec.SetField(job.FieldSalaryRange, field.TypeString, value)
	}
	if ju.mutation.SalaryRangeCleared() {
		_spec.ClearField(job.FieldSalaryRange, field.TypeString)
	}
	if value, ok := ju.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := ju.mutation.PublishedAt(); ok {
		_spec.SetField(job.FieldPublishedAt, field.TypeTime, value)
	}
	if ju.mutation.PublishedAtCleared() {
		_spec.ClearField(job.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := ju.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if ju.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ju.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !ju.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ju.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ju.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ju.mutation.done = true
	return n, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetTitle sets the "title" field.
func (juo *JobUpdateOne) SetTitle(s string) *JobUpdateOne {
	juo.mutation.SetTitle(s)
	return juo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableTitle(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetTitle(*s)
	}
	return juo
}

// ClearTitle clears the value of the "title" field.
func (juo *JobUpdateOne) ClearTitle() *JobUpdateOne {
	juo.mutation.ClearTitle()
	return juo
}

// SetDescription sets the "description" field.
func (juo *JobUpdateOne) SetDescription(s string) *JobUpdateOne {
	juo.mutation.SetDescription(s)
	return juo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableDescription(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetDescription(*s)
	}
	return juo
}

// ClearDescription clears the value of the "description" field.
func (juo *JobUpdateOne) ClearDescription() *JobUpdateOne {
	juo.mutation.ClearDescription()
	return juo
}

// SetLocation sets the "location" field.
func (juo *JobUpdateOne) SetLocation(s string) *JobUpdateOne {
	juo.mutation.SetLocation(s)
	return juo
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableLocation(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetLocation(*s)
	}
	return juo
}

// ClearLocation clears the value of the "location" field.
func (juo *JobUpdateOne) ClearLocation() *JobUpdateOne {
	juo.mutation.ClearLocation()
	return juo
}

// SetSalaryRange sets the "salary_range" field.
func (juo *JobUpdateOne) SetSalaryRange(s string) *JobUpdateOne {
	juo.mutation.SetSalaryRange(s)
	return juo
}

// SetNillableSalaryRange sets the "salary_range" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableSalaryRange(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetSalaryRange(*s)
	}
	return juo
}

// ClearSalaryRange clears the value of the "salary_range" field.
func (juo *JobUpdateOne) ClearSalaryRange() *JobUpdateOne {
	juo.mutation.ClearSalaryRange()
	return juo
}

// SetStatus sets the "status" field.
func (juo *JobUpdateOne) SetStatus(j job.Status) *JobUpdateOne {
	juo.mutation.SetStatus(j)
	return juo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableStatus(j *job.Status) *JobUpdateOne {
	if j != nil {
		juo.SetStatus(*j)
	}
	return juo
}

// SetPublishedAt sets the "published_at" field.
func (juo *JobUpdateOne) SetPublishedAt(t time.Time) *JobUpdateOne {
	juo.mutation.SetPublishedAt(t)
	return juo
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillablePublishedAt(t *time.Time) *JobUpdateOne {
	if t != nil {
		juo.SetPublishedAt(*t)
	}
	return juo
}

// ClearPublishedAt clears the value of the "published_at" field.
func (juo *JobUpdateOne) ClearPublishedAt() *JobUpdateOne {
	juo.mutation.ClearPublishedAt()
	return juo
}

// SetUpdatedAt sets the "updated_at" field.
func (juo *JobUpdateOne) SetUpdatedAt(t time.Time) *JobUpdateOne {
	juo.mutation.SetUpdatedAt(t)
	return juo
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (juo *JobUpdateOne) AddApplicationIDs(ids ...uuid.UUID) *JobUpdateOne {
	juo.mutation.AddApplicationIDs(ids...)
	return juo
}

// AddApplications adds the "applications" edges to the Application entity.
func (juo *JobUpdateOne) AddApplications(a ...*Application) *JobUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return juo.AddApplicationIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (juo *JobUpdateOne) Mutation() *JobMutation {
	return juo.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (juo *JobUpdateOne) ClearApplications() *JobUpdateOne {
	juo.mutation.ClearApplications()
	return juo
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (juo *JobUpdateOne) RemoveApplicationIDs(ids ...uuid.UUID) *JobUpdateOne {
	juo.mutation.RemoveApplicationIDs(ids...)
	return juo
}

// RemoveApplications removes "applications" edges to Application entities.
func (juo *JobUpdateOne) RemoveApplications(a ...*Application) *JobUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return juo.RemoveApplicationIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (juo *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	juo.mutation.Where(ps...)
	return juo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (juo *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	juo.fields = append([]string{field}, fields...)
	return juo
}

// Save executes the query and returns the updated Job entity.
func (juo *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	juo.defaults()
	return withHooks(ctx, juo.sqlSave, juo.mutation, juo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (juo *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := juo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (juo *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := juo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (juo *JobUpdateOne) ExecX(ctx context.Context) {
	if err := juo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (juo *JobUpdateOne) defaults() {
	if _, ok := juo.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		juo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (juo *JobUpdateOne) check() error {
	if v, ok := juo.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if juo.mutation.EnterpriseCleared() && len(juo.mutation.EnterpriseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.enterprise"`)
	}
	return nil
}

func (juo *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := juo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := juo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := juo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := juo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := juo.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if juo.mutation.TitleCleared() {
		_spec.ClearField(job.FieldTitle, field.TypeString)
	}
	if value, ok := juo.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
	}
	if juo.mutation.DescriptionCleared() {
		_spec.ClearField(job.FieldDescription, field.TypeString)
	}
	if value, ok := juo.mutation.Location(); ok {
		_spec.SetField(job.FieldLocation, field.TypeString, value)
	}
	if juo.mutation.LocationCleared() {
		_spec.ClearField(job.FieldLocation, field.TypeString)
	}
	if value, ok := juo.mutation.SalaryRange(); ok {
		_spec.SetField(job.FieldSalaryRange, field.TypeString, value)
	}
	if juo.mutation.SalaryRangeCleared() {
		_spec.ClearField(job.FieldSalaryRange, field.TypeString)
	}
	if value, ok := juo.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := juo.mutation.PublishedAt(); ok {
		_spec.SetField(job.FieldPublishedAt, field.TypeTime, value)
	}
	if juo.mutation.PublishedAtCleared() {
		_spec.ClearField(job.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := juo.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if juo.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := juo.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !juo.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := juo.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: juo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, juo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	juo.mutation.done = true
	return _node, nil
}
