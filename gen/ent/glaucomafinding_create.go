// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/glaucomafinding"
)

// GlaucomaFindingCreate is the builder for creating a GlaucomaFinding entity.
type GlaucomaFindingCreate struct {
	config
	mutation *GlaucomaFindingMutation
	hooks    []Hook
}

// SetEncounterID sets the "encounter_id" field.
func (_c *GlaucomaFindingCreate) SetEncounterID(v uuid.UUID) *GlaucomaFindingCreate {
	_c.mutation.SetEncounterID(v)
	return _c
}

// SetVcdrRight sets the "vcdr_right" field.
func (_c *GlaucomaFindingCreate) SetVcdrRight(v float64) *GlaucomaFindingCreate {
	_c.mutation.SetVcdrRight(v)
	return _c
}

// SetNillableVcdrRight sets the "vcdr_right" field if the given value is not nil.
func (_c *GlaucomaFindingCreate) SetNillableVcdrRight(v *float64) *GlaucomaFindingCreate {
	if v != nil {
		_c.SetVcdrRight(*v)
	}
	return _c
}

// SetVcdrLeft sets the "vcdr_left" field.
func (_c *GlaucomaFindingCreate) SetVcdrLeft(v float64) *GlaucomaFindingCreate {
	_c.mutation.SetVcdrLeft(v)
	return _c
}

// SetNillableVcdrLeft sets the "vcdr_left" field if the given value is not nil.
func (_c *GlaucomaFindingCreate) SetNillableVcdrLeft(v *float64) *GlaucomaFindingCreate {
	if v != nil {
		_c.SetVcdrLeft(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *GlaucomaFindingCreate) SetResult(v string) *GlaucomaFindingCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetID sets the "id" field.
func (_c *GlaucomaFindingCreate) SetID(v uuid.UUID) *GlaucomaFindingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GlaucomaFindingCreate) SetNillableID(v *uuid.UUID) *GlaucomaFindingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_c *GlaucomaFindingCreate) SetEncounter(v *Encounter) *GlaucomaFindingCreate {
	return _c.SetEncounterID(v.ID)
}

// Mutation returns the GlaucomaFindingMutation object of the builder.
func (_c *GlaucomaFindingCreate) Mutation() *GlaucomaFindingMutation {
	return _c.mutation
}

// Save creates the GlaucomaFinding in the database.
func (_c *GlaucomaFindingCreate) Save(ctx context.Context) (*GlaucomaFinding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GlaucomaFindingCreate) SaveX(ctx context.Context) *GlaucomaFinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GlaucomaFindingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GlaucomaFindingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GlaucomaFindingCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := glaucomafinding.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GlaucomaFindingCreate) check() error {
	if _, ok := _c.mutation.EncounterID(); !ok {
		return &ValidationError{Name: "encounter_id", err: errors.New(`ent: missing required field "GlaucomaFinding.encounter_id"`)}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "GlaucomaFinding.result"`)}
	}
	if len(_c.mutation.EncounterIDs()) == 0 {
		return &ValidationError{Name: "encounter", err: errors.New(`ent: missing required edge "GlaucomaFinding.encounter"`)}
	}
	return nil
}

func (_c *GlaucomaFindingCreate) sqlSave(ctx context.Context) (*GlaucomaFinding, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
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
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GlaucomaFindingCreate) createSpec() (*GlaucomaFinding, *sqlgraph.CreateSpec) {
	var (
		_node = &GlaucomaFinding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(glaucomafinding.Table, sqlgraph.NewFieldSpec(glaucomafinding.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VcdrRight(); ok {
		_spec.SetField(glaucomafinding.FieldVcdrRight, field.TypeFloat64, value)
		_node.VcdrRight = &value
	}
	if value, ok := _c.mutation.VcdrLeft(); ok {
		_spec.SetField(glaucomafinding.FieldVcdrLeft, field.TypeFloat64, value)
		_node.VcdrLeft = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(glaucomafinding.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if nodes := _c.mutation.EncounterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   glaucomafinding.EncounterTable,
			Columns: []string{glaucomafinding.EncounterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EncounterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GlaucomaFindingCreateBulk is the builder for creating many GlaucomaFinding entities in bulk.
type GlaucomaFindingCreateBulk struct {
	config
	err      error
	builders []*GlaucomaFindingCreate
}

// Save creates the GlaucomaFinding entities in the database.
func (_c *GlaucomaFindingCreateBulk) Save(ctx context.Context) ([]*GlaucomaFinding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GlaucomaFinding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GlaucomaFindingMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GlaucomaFindingCreateBulk) SaveX(ctx context.Context) []*GlaucomaFinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GlaucomaFindingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GlaucomaFindingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
