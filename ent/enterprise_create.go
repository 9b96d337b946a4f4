// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"talentbridge/ent/enterprise"
	"talentbridge/ent/job"
	"talentbridge/ent/user"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// EnterpriseCreate is the builder for creating a Enterprise entity.
type EnterpriseCreate struct {
	config
	mutation *EnterpriseMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (ec *EnterpriseCreate) SetName(s string) *EnterpriseCreate {
	ec.mutation.SetName(s)
	return ec
}

// SetIndustry sets the "industry" field.
func (ec *EnterpriseCreate) SetIndustry(s string) *EnterpriseCreate {
	ec.mutation.SetIndustry(s)
	return ec
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (ec *EnterpriseCreate) SetNillableIndustry(s *string) *EnterpriseCreate {
	if s != nil {
		ec.SetIndustry(*s)
	}
	return ec
}

// SetDescription sets the "description" field.
func (ec *EnterpriseCreate) SetDescription(s string) *EnterpriseCreate {
	ec.mutation.SetDescription(s)
	return ec
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ec *EnterpriseCreate) SetNillableDescription(s *string) *EnterpriseCreate {
	if s != nil {
		ec.SetDescription(*s)
	}
	return ec
}

// SetCreatedAt sets the "created_at" field.
func (ec *EnterpriseCreate) SetCreatedAt(t time.Time) *EnterpriseCreate {
	ec.mutation.SetCreatedAt(t)
	return ec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ec *EnterpriseCreate) SetNillableCreatedAt(t *time.Time) *EnterpriseCreate {
	if t != nil {
		ec.SetCreatedAt(*t)
	}
	return ec
}

// SetUpdatedAt sets the "updated_at" field.
func (ec *EnterpriseCreate) SetUpdatedAt(t time.Time) *EnterpriseCreate {
	ec.mutation.SetUpdatedAt(t)
	return ec
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ec *EnterpriseCreate) SetNillableUpdatedAt(t *time.Time) *EnterpriseCreate {
	if t != nil {
		ec.SetUpdatedAt(*t)
	}
	return ec
}

// SetID sets the "id" field.
func (ec *EnterpriseCreate) SetID(u uuid.UUID) *EnterpriseCreate {
	ec.mutation.SetID(u)
	return ec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ec *EnterpriseCreate) SetNillableID(u *uuid.UUID) *EnterpriseCreate {
	if u != nil {
		ec.SetID(*u)
	}
	return ec
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (ec *EnterpriseCreate) AddJobIDs(ids ...uuid.UUID) *EnterpriseCreate {
	ec.mutation.AddJobIDs(ids...)
	return ec
}

// AddJobs adds the "jobs" edges to the Job entity.
func (ec *EnterpriseCreate) AddJobs(j ...*Job) *EnterpriseCreate {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return ec.AddJobIDs(ids...)
}

// AddMemberIDs adds the "members" edge to the User entity by IDs.
func (ec *EnterpriseCreate) AddMemberIDs(ids ...uuid.UUID) *EnterpriseCreate {
	ec.mutation.AddMemberIDs(ids...)
	return ec
}

// AddMembers adds the "members" edges to the User entity.
func (ec *EnterpriseCreate) AddMembers(u ...*User) *EnterpriseCreate {
	ids := make([]uuid.UUID, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return ec.AddMemberIDs(ids...)
}

// Mutation returns the EnterpriseMutation object of the builder.
func (ec *EnterpriseCreate) Mutation() *EnterpriseMutation {
	return ec.mutation
}

// Save creates the Enterprise in the database.
func (ec *EnterpriseCreate) Save(ctx context.Context) (*Enterprise, error) {
	ec.defaults()
	return withHooks(ctx, ec.sqlSave, ec.mutation, ec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ec *EnterpriseCreate) SaveX(ctx context.Context) *Enterprise {
	v, err := ec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ec *EnterpriseCreate) Exec(ctx context.Context) error {
	_, err := ec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ec *EnterpriseCreate) ExecX(ctx context.Context) {
	if err := ec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ec *EnterpriseCreate) defaults() {
	if _, ok := ec.mutation.CreatedAt(); !ok {
		v := enterprise.DefaultCreatedAt()
		ec.mutation.SetCreatedAt(v)
	}
	if _, ok := ec.mutation.UpdatedAt(); !ok {
		v := enterprise.DefaultUpdatedAt()
		ec.mutation.SetUpdatedAt(v)
	}
	if _, ok := ec.mutation.ID(); !ok {
		v := enterprise.DefaultID()
		ec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ec *EnterpriseCreate) check() error {
	if _, ok := ec.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Enterprise.name"`)}
	}
	if v, ok := ec.mutation.Name(); ok {
		if err := enterprise.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Enterprise.name": %w`, err)}
		}
	}
	if _, ok := ec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Enterprise.created_at"`)}
	}
	if _, ok := ec.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Enterprise.updated_at"`)}
	}
	return nil
}

func (ec *EnterpriseCreate) sqlSave(ctx context.Context) (*Enterprise, error) {
	if err := ec.check(); err != nil {
		return nil, err
	}
	_node, _spec := ec.createSpec()
	if err := sqlgraph.CreateNode(ctx, ec.driver, _spec); err != nil {
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
	ec.mutation.id = &_node.ID
	ec.mutation.done = true
	return _node, nil
}

func (ec *EnterpriseCreate) createSpec() (*Enterprise, *sqlgraph.CreateSpec) {
	var (
		_node = &Enterprise{config: ec.config}
		_spec = sqlgraph.NewCreateSpec(enterprise.Table, sqlgraph.NewFieldSpec(enterprise.FieldID, field.TypeUUID))
	)
	if id, ok := ec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ec.mutation.Name(); ok {
		_spec.SetField(enterprise.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := ec.mutation.Industry(); ok {
		_spec.SetField(enterprise.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := ec.mutation.Description(); ok {
		_spec.SetField(enterprise.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := ec.mutation.CreatedAt(); ok {
		_spec.SetField(enterprise.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ec.mutation.UpdatedAt(); ok {
		_spec.SetField(enterprise.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ec.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ec.mutation.MembersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EnterpriseCreateBulk is the builder for creating many Enterprise entities in bulk.
type EnterpriseCreateBulk struct {
	config
	err      error
	builders []*EnterpriseCreate
}

// Save creates the Enterprise entities in the database.
func (ecb *EnterpriseCreateBulk) Save(ctx context.Context) ([]*Enterprise, error) {
	if ecb.err != nil {
		return nil, ecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ecb.builders))
	nodes := make([]*Enterprise, len(ecb.builders))
	mutators := make([]Mutator, len(ecb.builders))
	for i := range ecb.builders {
		func(i int, root context.Context) {
			builder := ecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnterpriseMutation)
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
					_, err = mutators[i+1].Mutate(root, ecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ecb *EnterpriseCreateBulk) SaveX(ctx context.Context) []*Enterprise {
	v, err := ecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ecb *EnterpriseCreateBulk) Exec(ctx context.Context) error {
	_, err := ecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ecb *EnterpriseCreateBulk) ExecX(ctx context.Context) {
	if err := ecb.Exec(ctx); err != nil {
		panic(err)
	}
}
