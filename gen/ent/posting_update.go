// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/campushire/placement-portal/gen/ent/parsejob"
	"github.com/campushire/placement-portal/gen/ent/posting"
	"github.com/campushire/placement-portal/gen/ent/predicate"
	"github.com/campushire/placement-portal/gen/ent/profile"
	"github.com/google/uuid"
)

// PostingUpdate is the builder for updating Posting entities.
type PostingUpdate struct {
	config
	hooks    []Hook
	mutation *PostingMutation
}

// Where appends a list predicates to the PostingUpdate builder.
func (_u *PostingUpdate) Where(ps ...predicate.Posting) *PostingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *PostingUpdate) SetProfileID(v uuid.UUID) *PostingUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableProfileID(v *uuid.UUID) *PostingUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PostingUpdate) SetTitle(v string) *PostingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableTitle(v *string) *PostingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *PostingUpdate) SetCompanyName(v string) *PostingUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableCompanyName(v *string) *PostingUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *PostingUpdate) SetLocation(v string) *PostingUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableLocation(v *string) *PostingUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *PostingUpdate) ClearLocation() *PostingUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetSalaryRange sets the "salary_range" field.
func (_u *PostingUpdate) SetSalaryRange(v string) *PostingUpdate {
	_u.mutation.SetSalaryRange(v)
	return _u
}

// SetNillableSalaryRange sets the "salary_range" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableSalaryRange(v *string) *PostingUpdate {
	if v != nil {
		_u.SetSalaryRange(*v)
	}
	return _u
}

// ClearSalaryRange clears the value of the "salary_range" field.
func (_u *PostingUpdate) ClearSalaryRange() *PostingUpdate {
	_u.mutation.ClearSalaryRange()
	return _u
}

// SetExperienceRequired sets the "experience_required" field.
func (_u *PostingUpdate) SetExperienceRequired(v string) *PostingUpdate {
	_u.mutation.SetExperienceRequired(v)
	return _u
}

// SetNillableExperienceRequired sets the "experience_required" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableExperienceRequired(v *string) *PostingUpdate {
	if v != nil {
		_u.SetExperienceRequired(*v)
	}
	return _u
}

// ClearExperienceRequired clears the value of the "experience_required" field.
func (_u *PostingUpdate) ClearExperienceRequired() *PostingUpdate {
	_u.mutation.ClearExperienceRequired()
	return _u
}

// SetSkillsRequired sets the "skills_required" field.
func (_u *PostingUpdate) SetSkillsRequired(v []string) *PostingUpdate {
	_u.mutation.SetSkillsRequired(v)
	return _u
}

// AppendSkillsRequired appends value to the "skills_required" field.
func (_u *PostingUpdate) AppendSkillsRequired(v []string) *PostingUpdate {
	_u.mutation.AppendSkillsRequired(v)
	return _u
}

// ClearSkillsRequired clears the value of the "skills_required" field.
func (_u *PostingUpdate) ClearSkillsRequired() *PostingUpdate {
	_u.mutation.ClearSkillsRequired()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PostingUpdate) SetDescription(v string) *PostingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableDescription(v *string) *PostingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *PostingUpdate) SetRequirements(v []string) *PostingUpdate {
	_u.mutation.SetRequirements(v)
	return _u
}

// AppendRequirements appends value to the "requirements" field.
func (_u *PostingUpdate) AppendRequirements(v []string) *PostingUpdate {
	_u.mutation.AppendRequirements(v)
	return _u
}

// ClearRequirements clears the value of the "requirements" field.
func (_u *PostingUpdate) ClearRequirements() *PostingUpdate {
	_u.mutation.ClearRequirements()
	return _u
}

// SetBenefits sets the "benefits" field.
func (_u *PostingUpdate) SetBenefits(v []string) *PostingUpdate {
	_u.mutation.SetBenefits(v)
	return _u
}

// AppendBenefits appends value to the "benefits" field.
func (_u *PostingUpdate) AppendBenefits(v []string) *PostingUpdate {
	_u.mutation.AppendBenefits(v)
	return _u
}

// ClearBenefits clears the value of the "benefits" field.
func (_u *PostingUpdate) ClearBenefits() *PostingUpdate {
	_u.mutation.ClearBenefits()
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *PostingUpdate) SetJobType(v string) *PostingUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableJobType(v *string) *PostingUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetWorkMode sets the "work_mode" field.
func (_u *PostingUpdate) SetWorkMode(v string) *PostingUpdate {
	_u.mutation.SetWorkMode(v)
	return _u
}

// SetNillableWorkMode sets the "work_mode" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableWorkMode(v *string) *PostingUpdate {
	if v != nil {
		_u.SetWorkMode(*v)
	}
	return _u
}

// SetApplicationDeadline sets the "application_deadline" field.
func (_u *PostingUpdate) SetApplicationDeadline(v time.Time) *PostingUpdate {
	_u.mutation.SetApplicationDeadline(v)
	return _u
}

// SetNillableApplicationDeadline sets the "application_deadline" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableApplicationDeadline(v *time.Time) *PostingUpdate {
	if v != nil {
		_u.SetApplicationDeadline(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PostingUpdate) SetStatus(v string) *PostingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableStatus(v *string) *PostingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PostingUpdate) SetCreatedAt(v time.Time) *PostingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PostingUpdate) SetNillableCreatedAt(v *time.Time) *PostingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PostingUpdate) SetUpdatedAt(v time.Time) *PostingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *PostingUpdate) SetProfile(v *Profile) *PostingUpdate {
	return _u.SetProfileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *PostingUpdate) AddJobIDs(ids ...uuid.UUID) *PostingUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *PostingUpdate) AddJobs(v ...*ParseJob) *PostingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PostingMutation object of the builder.
func (_u *PostingUpdate) Mutation() *PostingMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *PostingUpdate) ClearProfile() *PostingUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *PostingUpdate) ClearJobs() *PostingUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *PostingUpdate) RemoveJobIDs(ids ...uuid.UUID) *PostingUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *PostingUpdate) RemoveJobs(v ...*ParseJob) *PostingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PostingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PostingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PostingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := posting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostingUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := posting.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Posting.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := posting.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Posting.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobType(); ok {
		if err := posting.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Posting.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorkMode(); ok {
		if err := posting.WorkModeValidator(v); err != nil {
			return &ValidationError{Name: "work_mode", err: fmt.Errorf(`ent: validator failed for field "Posting.work_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := posting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Posting.status": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Posting.profile"`)
	}
	return nil
}

func (_u *PostingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(posting.Table, posting.Columns, sqlgraph.NewFieldSpec(posting.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(posting.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(posting.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(posting.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(posting.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.SalaryRange(); ok {
		_spec.SetField(posting.FieldSalaryRange, field.TypeString, value)
	}
	if _u.mutation.SalaryRangeCleared() {
		_spec.ClearField(posting.FieldSalaryRange, field.TypeString)
	}
	if value, ok := _u.mutation.ExperienceRequired(); ok {
		_spec.SetField(posting.FieldExperienceRequired, field.TypeString, value)
	}
	if _u.mutation.ExperienceRequiredCleared() {
		_spec.ClearField(posting.FieldExperienceRequired, field.TypeString)
	}
	if value, ok := _u.mutation.SkillsRequired(); ok {
		_spec.SetField(posting.FieldSkillsRequired, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkillsRequired(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, posting.FieldSkillsRequired, value)
		})
	}
	if _u.mutation.SkillsRequiredCleared() {
		_spec.ClearField(posting.FieldSkillsRequired, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(posting.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(posting.FieldRequirements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequirements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, posting.FieldRequirements, value)
		})
	}
	if _u.mutation.RequirementsCleared() {
		_spec.ClearField(posting.FieldRequirements, field.TypeJSON)
	}
	if value, ok := _u.mutation.Benefits(); ok {
		_spec.SetField(posting.FieldBenefits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBenefits(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, posting.FieldBenefits, value)
		})
	}
	if _u.mutation.BenefitsCleared() {
		_spec.ClearField(posting.FieldBenefits, field.TypeJSON)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(posting.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkMode(); ok {
		_spec.SetField(posting.FieldWorkMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApplicationDeadline(); ok {
		_spec.SetField(posting.FieldApplicationDeadline, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(posting.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(posting.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(posting.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{posting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PostingUpdateOne is the builder for updating a single Posting entity.
type PostingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostingMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *PostingUpdateOne) SetProfileID(v uuid.UUID) *PostingUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableProfileID(v *uuid.UUID) *PostingUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PostingUpdateOne) SetTitle(v string) *PostingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableTitle(v *string) *PostingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *PostingUpdateOne) SetCompanyName(v string) *PostingUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableCompanyName(v *string) *PostingUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *PostingUpdateOne) SetLocation(v string) *PostingUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableLocation(v *string) *PostingUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *PostingUpdateOne) ClearLocation() *PostingUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetSalaryRange sets the "salary_range" field.
func (_u *PostingUpdateOne) SetSalaryRange(v string) *PostingUpdateOne {
	_u.mutation.SetSalaryRange(v)
	return _u
}

// SetNillableSalaryRange sets the "salary_range" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableSalaryRange(v *string) *PostingUpdateOne {
	if v != nil {
		_u.SetSalaryRange(*v)
	}
	return _u
}

// ClearSalaryRange clears the value of the "salary_range" field.
func (_u *PostingUpdateOne) ClearSalaryRange() *PostingUpdateOne {
	_u.mutation.ClearSalaryRange()
	return _u
}

// SetExperienceRequired sets the "experience_required" field.
func (_u *PostingUpdateOne) SetExperienceRequired(v string) *PostingUpdateOne {
	_u.mutation.SetExperienceRequired(v)
	return _u
}

// SetNillableExperienceRequired sets the "experience_required" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableExperienceRequired(v *string) *PostingUpdateOne {
	if v != nil {
		_u.SetExperienceRequired(*v)
	}
	return _u
}

// ClearExperienceRequired clears the value of the "experience_required" field.
func (_u *PostingUpdateOne) ClearExperienceRequired() *PostingUpdateOne {
	_u.mutation.ClearExperienceRequired()
	return _u
}

// SetSkillsRequired sets the "skills_required" field.
func (_u *PostingUpdateOne) SetSkillsRequired(v []string) *PostingUpdateOne {
	_u.mutation.SetSkillsRequired(v)
	return _u
}

// AppendSkillsRequired appends value to the "skills_required" field.
func (_u *PostingUpdateOne) AppendSkillsRequired(v []string) *PostingUpdateOne {
	_u.mutation.AppendSkillsRequired(v)
	return _u
}

// ClearSkillsRequired clears the value of the "skills_required" field.
func (_u *PostingUpdateOne) ClearSkillsRequired() *PostingUpdateOne {
	_u.mutation.ClearSkillsRequired()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PostingUpdateOne) SetDescription(v string) *PostingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableDescription(v *string) *PostingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *PostingUpdateOne) SetRequirements(v []string) *PostingUpdateOne {
	_u.mutation.SetRequirements(v)
	return _u
}

// AppendRequirements appends value to the "requirements" field.
func (_u *PostingUpdateOne) AppendRequirements(v []string) *PostingUpdateOne {
	_u.mutation.AppendRequirements(v)
	return _u
}

// ClearRequirements clears the value of the "requirements" field.
func (_u *PostingUpdateOne) ClearRequirements() *PostingUpdateOne {
	_u.mutation.ClearRequirements()
	return _u
}

// SetBenefits sets the "benefits" field.
func (_u *PostingUpdateOne) SetBenefits(v []string) *PostingUpdateOne {
	_u.mutation.SetBenefits(v)
	return _u
}

// AppendBenefits appends value to the "benefits" field.
func (_u *PostingUpdateOne) AppendBenefits(v []string) *PostingUpdateOne {
	_u.mutation.AppendBenefits(v)
	return _u
}

// ClearBenefits clears the value of the "benefits" field.
func (_u *PostingUpdateOne) ClearBenefits() *PostingUpdateOne {
	_u.mutation.ClearBenefits()
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *PostingUpdateOne) SetJobType(v string) *PostingUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableJobType(v *string) *PostingUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetWorkMode sets the "work_mode" field.
func (_u *PostingUpdateOne) SetWorkMode(v string) *PostingUpdateOne {
	_u.mutation.SetWorkMode(v)
	return _u
}

// SetNillableWorkMode sets the "work_mode" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableWorkMode(v *string) *PostingUpdateOne {
	if v != nil {
		_u.SetWorkMode(*v)
	}
	return _u
}

// SetApplicationDeadline sets the "application_deadline" field.
func (_u *PostingUpdateOne) SetApplicationDeadline(v time.Time) *PostingUpdateOne {
	_u.mutation.SetApplicationDeadline(v)
	return _u
}

// SetNillableApplicationDeadline sets the "application_deadline" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableApplicationDeadline(v *time.Time) *PostingUpdateOne {
	if v != nil {
		_u.SetApplicationDeadline(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PostingUpdateOne) SetStatus(v string) *PostingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableStatus(v *string) *PostingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PostingUpdateOne) SetCreatedAt(v time.Time) *PostingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PostingUpdateOne) SetNillableCreatedAt(v *time.Time) *PostingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PostingUpdateOne) SetUpdatedAt(v time.Time) *PostingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *PostingUpdateOne) SetProfile(v *Profile) *PostingUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *PostingUpdateOne) AddJobIDs(ids ...uuid.UUID) *PostingUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *PostingUpdateOne) AddJobs(v ...*ParseJob) *PostingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PostingMutation object of the builder.
func (_u *PostingUpdateOne) Mutation() *PostingMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *PostingUpdateOne) ClearProfile() *PostingUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *PostingUpdateOne) ClearJobs() *PostingUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *PostingUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *PostingUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *PostingUpdateOne) RemoveJobs(v ...*ParseJob) *PostingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the PostingUpdate builder.
func (_u *PostingUpdateOne) Where(ps ...predicate.Posting) *PostingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PostingUpdateOne) Select(field string, fields ...string) *PostingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Posting entity.
func (_u *PostingUpdateOne) Save(ctx context.Context) (*Posting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostingUpdateOne) SaveX(ctx context.Context) *Posting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PostingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PostingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := posting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostingUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := posting.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Posting.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := posting.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Posting.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobType(); ok {
		if err := posting.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Posting.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorkMode(); ok {
		if err := posting.WorkModeValidator(v); err != nil {
			return &ValidationError{Name: "work_mode", err: fmt.Errorf(`ent: validator failed for field "Posting.work_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := posting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Posting.status": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Posting.profile"`)
	}
	return nil
}

func (_u *PostingUpdateOne) sqlSave(ctx context.Context) (_node *Posting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(posting.Table, posting.Columns, sqlgraph.NewFieldSpec(posting.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Posting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, posting.FieldID)
		for _, f := range fields {
			if !posting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != posting.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(posting.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(posting.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(posting.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(posting.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.SalaryRange(); ok {
		_spec.SetField(posting.FieldSalaryRange, field.TypeString, value)
	}
	if _u.mutation.SalaryRangeCleared() {
		_spec.ClearField(posting.FieldSalaryRange, field.TypeString)
	}
	if value, ok := _u.mutation.ExperienceRequired(); ok {
		_spec.SetField(posting.FieldExperienceRequired, field.TypeString, value)
	}
	if _u.mutation.ExperienceRequiredCleared() {
		_spec.ClearField(posting.FieldExperienceRequired, field.TypeString)
	}
	if value, ok := _u.mutation.SkillsRequired(); ok {
		_spec.SetField(posting.FieldSkillsRequired, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkillsRequired(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, posting.FieldSkillsRequired, value)
		})
	}
	if _u.mutation.SkillsRequiredCleared() {
		_spec.ClearField(posting.FieldSkillsRequired, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(posting.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(posting.FieldRequirements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequirements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, posting.FieldRequirements, value)
		})
	}
	if _u.mutation.RequirementsCleared() {
		_spec.ClearField(posting.FieldRequirements, field.TypeJSON)
	}
	if value, ok := _u.mutation.Benefits(); ok {
		_spec.SetField(posting.FieldBenefits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBenefits(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, posting.FieldBenefits, value)
		})
	}
	if _u.mutation.BenefitsCleared() {
		_spec.ClearField(posting.FieldBenefits, field.TypeJSON)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(posting.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkMode(); ok {
		_spec.SetField(posting.FieldWorkMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApplicationDeadline(); ok {
		_spec.SetField(posting.FieldApplicationDeadline, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(posting.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(posting.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(posting.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Posting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{posting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
