// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/campushire/placement-portal/gen/ent/posting"
	"github.com/campushire/placement-portal/gen/ent/profile"
	"github.com/google/uuid"
)

// Posting is the model entity for the Posting schema.
type Posting struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// Location holds the value of the "location" field.
	Location *string `json:"location,omitempty"`
	// SalaryRange holds the value of the "salary_range" field.
	SalaryRange *string `json:"salary_range,omitempty"`
	// ExperienceRequired holds the value of the "experience_required" field.
	ExperienceRequired *string `json:"experience_required,omitempty"`
	// SkillsRequired holds the value of the "skills_required" field.
	SkillsRequired []string `json:"skills_required,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Requirements holds the value of the "requirements" field.
	Requirements []string `json:"requirements,omitempty"`
	// Benefits holds the value of the "benefits" field.
	Benefits []string `json:"benefits,omitempty"`
	// JobType holds the value of the "job_type" field.
	JobType string `json:"job_type,omitempty"`
	// WorkMode holds the value of the "work_mode" field.
	WorkMode string `json:"work_mode,omitempty"`
	// ApplicationDeadline holds the value of the "application_deadline" field.
	ApplicationDeadline time.Time `json:"application_deadline,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PostingQuery when eager-loading is set.
	Edges        PostingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PostingEdges holds the relations/edges for other nodes in the graph.
type PostingEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ParseJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PostingEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e PostingEdges) JobsOrErr() ([]*ParseJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Posting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case posting.FieldSkillsRequired, posting.FieldRequirements, posting.FieldBenefits:
			values[i] = new([]byte)
		case posting.FieldTitle, posting.FieldCompanyName, posting.FieldLocation, posting.FieldSalaryRange, posting.FieldExperienceRequired, posting.FieldDescription, posting.FieldJobType, posting.FieldWorkMode, posting.FieldStatus:
			values[i] = new(sql.NullString)
		case posting.FieldApplicationDeadline, posting.FieldCreatedAt, posting.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case posting.FieldID, posting.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Posting fields.
func (_m *Posting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case posting.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case posting.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case posting.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case posting.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case posting.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = new(string)
				*_m.Location = value.String
			}
		case posting.FieldSalaryRange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field salary_range", values[i])
			} else if value.Valid {
				_m.SalaryRange = new(string)
				*_m.SalaryRange = value.String
			}
		case posting.FieldExperienceRequired:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experience_required", values[i])
			} else if value.Valid {
				_m.ExperienceRequired = new(string)
				*_m.ExperienceRequired = value.String
			}
		case posting.FieldSkillsRequired:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skills_required", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkillsRequired); err != nil {
					return fmt.Errorf("unmarshal field skills_required: %w", err)
				}
			}
		case posting.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case posting.FieldRequirements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field requirements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Requirements); err != nil {
					return fmt.Errorf("unmarshal field requirements: %w", err)
				}
			}
		case posting.FieldBenefits:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field benefits", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Benefits); err != nil {
					return fmt.Errorf("unmarshal field benefits: %w", err)
				}
			}
		case posting.FieldJobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_type", values[i])
			} else if value.Valid {
				_m.JobType = value.String
			}
		case posting.FieldWorkMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_mode", values[i])
			} else if value.Valid {
				_m.WorkMode = value.String
			}
		case posting.FieldApplicationDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field application_deadline", values[i])
			} else if value.Valid {
				_m.ApplicationDeadline = value.Time
			}
		case posting.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case posting.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case posting.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Posting.
// This includes values selected through modifiers, order, etc.
func (_m *Posting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the Posting entity.
func (_m *Posting) QueryProfile() *ProfileQuery {
	return NewPostingClient(_m.config).QueryProfile(_m)
}

// QueryJobs queries the "jobs" edge of the Posting entity.
func (_m *Posting) QueryJobs() *ParseJobQuery {
	return NewPostingClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Posting.
// Note that you need to call Posting.Unwrap() before calling this method if this Posting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Posting) Update() *PostingUpdateOne {
	return NewPostingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Posting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Posting) Unwrap() *Posting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Posting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Posting) String() string {
	var builder strings.Builder
	builder.WriteString("Posting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	if v := _m.Location; v != nil {
		builder.WriteString("location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SalaryRange; v != nil {
		builder.WriteString("salary_range=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExperienceRequired; v != nil {
		builder.WriteString("experience_required=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("skills_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillsRequired))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("requirements=")
	builder.WriteString(fmt.Sprintf("%v", _m.Requirements))
	builder.WriteString(", ")
	builder.WriteString("benefits=")
	builder.WriteString(fmt.Sprintf("%v", _m.Benefits))
	builder.WriteString(", ")
	builder.WriteString("job_type=")
	builder.WriteString(_m.JobType)
	builder.WriteString(", ")
	builder.WriteString("work_mode=")
	builder.WriteString(_m.WorkMode)
	builder.WriteString(", ")
	builder.WriteString("application_deadline=")
	builder.WriteString(_m.ApplicationDeadline.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Postings is a parsable slice of Posting.
type Postings []*Posting
