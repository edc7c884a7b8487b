// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campushire/placement-portal/gen/ent/parsejob"
	"github.com/campushire/placement-portal/gen/ent/posting"
	"github.com/campushire/placement-portal/gen/ent/profile"
	"github.com/google/uuid"
)

// PostingCreate is the builder for creating a Posting entity.
type PostingCreate struct {
	config
	mutation *PostingMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *PostingCreate) SetProfileID(v uuid.UUID) *PostingCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PostingCreate) SetTitle(v string) *PostingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *PostingCreate) SetCompanyName(v string) *PostingCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *PostingCreate) SetLocation(v string) *PostingCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *PostingCreate) SetNillableLocation(v *string) *PostingCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetSalaryRange sets the "salary_range" field.
func (_c *PostingCreate) SetSalaryRange(v string) *PostingCreate {
	_c.mutation.SetSalaryRange(v)
	return _c
}

// SetNillableSalaryRange sets the "salary_range" field if the given value is not nil.
func (_c *PostingCreate) SetNillableSalaryRange(v *string) *PostingCreate {
	if v != nil {
		_c.SetSalaryRange(*v)
	}
	return _c
}

// SetExperienceRequired sets the "experience_required" field.
func (_c *PostingCreate) SetExperienceRequired(v string) *PostingCreate {
	_c.mutation.SetExperienceRequired(v)
	return _c
}

// SetNillableExperienceRequired sets the "experience_required" field if the given value is not nil.
func (_c *PostingCreate) SetNillableExperienceRequired(v *string) *PostingCreate {
	if v != nil {
		_c.SetExperienceRequired(*v)
	}
	return _c
}

// SetSkillsRequired sets the "skills_required" field.
func (_c *PostingCreate) SetSkillsRequired(v []string) *PostingCreate {
	_c.mutation.SetSkillsRequired(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PostingCreate) SetDescription(v string) *PostingCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetRequirements sets the "requirements" field.
func (_c *PostingCreate) SetRequirements(v []string) *PostingCreate {
	_c.mutation.SetRequirements(v)
	return _c
}

// SetBenefits sets the "benefits" field.
func (_c *PostingCreate) SetBenefits(v []string) *PostingCreate {
	_c.mutation.SetBenefits(v)
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *PostingCreate) SetJobType(v string) *PostingCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetWorkMode sets the "work_mode" field.
func (_c *PostingCreate) SetWorkMode(v string) *PostingCreate {
	_c.mutation.SetWorkMode(v)
	return _c
}

// SetApplicationDeadline sets the "application_deadline" field.
func (_c *PostingCreate) SetApplicationDeadline(v time.Time) *PostingCreate {
	_c.mutation.SetApplicationDeadline(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PostingCreate) SetStatus(v string) *PostingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PostingCreate) SetNillableStatus(v *string) *PostingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PostingCreate) SetCreatedAt(v time.Time) *PostingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PostingCreate) SetNillableCreatedAt(v *time.Time) *PostingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PostingCreate) SetUpdatedAt(v time.Time) *PostingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PostingCreate) SetNillableUpdatedAt(v *time.Time) *PostingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PostingCreate) SetID(v uuid.UUID) *PostingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PostingCreate) SetNillableID(v *uuid.UUID) *PostingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *PostingCreate) SetProfile(v *Profile) *PostingCreate {
	return _c.SetProfileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_c *PostingCreate) AddJobIDs(ids ...uuid.UUID) *PostingCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_c *PostingCreate) AddJobs(v ...*ParseJob) *PostingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the PostingMutation object of the builder.
func (_c *PostingCreate) Mutation() *PostingMutation {
	return _c.mutation
}

// Save creates the Posting in the database.
func (_c *PostingCreate) Save(ctx context.Context) (*Posting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PostingCreate) SaveX(ctx context.Context) *Posting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PostingCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := posting.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := posting.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := posting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := posting.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PostingCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Posting.profile_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Posting.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := posting.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Posting.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Posting.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := posting.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Posting.company_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Posting.description"`)}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "Posting.job_type"`)}
	}
	if v, ok := _c.mutation.JobType(); ok {
		if err := posting.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Posting.job_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorkMode(); !ok {
		return &ValidationError{Name: "work_mode", err: errors.New(`ent: missing required field "Posting.work_mode"`)}
	}
	if v, ok := _c.mutation.WorkMode(); ok {
		if err := posting.WorkModeValidator(v); err != nil {
			return &ValidationError{Name: "work_mode", err: fmt.Errorf(`ent: validator failed for field "Posting.work_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApplicationDeadline(); !ok {
		return &ValidationError{Name: "application_deadline", err: errors.New(`ent: missing required field "Posting.application_deadline"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Posting.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := posting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Posting.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Posting.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Posting.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "Posting.profile"`)}
	}
	return nil
}

func (_c *PostingCreate) sqlSave(ctx context.Context) (*Posting, error) {
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

func (_c *PostingCreate) createSpec() (*Posting, *sqlgraph.CreateSpec) {
	var (
		_node = &Posting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(posting.Table, sqlgraph.NewFieldSpec(posting.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(posting.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(posting.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(posting.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.SalaryRange(); ok {
		_spec.SetField(posting.FieldSalaryRange, field.TypeString, value)
		_node.SalaryRange = &value
	}
	if value, ok := _c.mutation.ExperienceRequired(); ok {
		_spec.SetField(posting.FieldExperienceRequired, field.TypeString, value)
		_node.ExperienceRequired = &value
	}
	if value, ok := _c.mutation.SkillsRequired(); ok {
		_spec.SetField(posting.FieldSkillsRequired, field.TypeJSON, value)
		_node.SkillsRequired = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(posting.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Requirements(); ok {
		_spec.SetField(posting.FieldRequirements, field.TypeJSON, value)
		_node.Requirements = value
	}
	if value, ok := _c.mutation.Benefits(); ok {
		_spec.SetField(posting.FieldBenefits, field.TypeJSON, value)
		_node.Benefits = value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(posting.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.WorkMode(); ok {
		_spec.SetField(posting.FieldWorkMode, field.TypeString, value)
		_node.WorkMode = value
	}
	if value, ok := _c.mutation.ApplicationDeadline(); ok {
		_spec.SetField(posting.FieldApplicationDeadline, field.TypeTime, value)
		_node.ApplicationDeadline = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(posting.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(posting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(posting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   posting.ProfileTable,
			Columns: []string{posting.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   posting.JobsTable,
			Columns: []string{posting.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PostingCreateBulk is the builder for creating many Posting entities in bulk.
type PostingCreateBulk struct {
	config
	err      error
	builders []*PostingCreate
}

// Save creates the Posting entities in the database.
func (_c *PostingCreateBulk) Save(ctx context.Context) ([]*Posting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Posting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PostingMutation)
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
func (_c *PostingCreateBulk) SaveX(ctx context.Context) []*Posting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
