// Code generated by ent, DO NOT EDIT.

package posting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/campushire/placement-portal/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldProfileID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldTitle, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldCompanyName, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldLocation, v))
}

// SalaryRange applies equality check predicate on the "salary_range" field. It's identical to SalaryRangeEQ.
func SalaryRange(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldSalaryRange, v))
}

// ExperienceRequired applies equality check predicate on the "experience_required" field. It's identical to ExperienceRequiredEQ.
func ExperienceRequired(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldExperienceRequired, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldDescription, v))
}

// JobType applies equality check predicate on the "job_type" field. It's identical to JobTypeEQ.
func JobType(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldJobType, v))
}

// WorkMode applies equality check predicate on the "work_mode" field. It's identical to WorkModeEQ.
func WorkMode(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldWorkMode, v))
}

// ApplicationDeadline applies equality check predicate on the "application_deadline" field. It's identical to ApplicationDeadlineEQ.
func ApplicationDeadline(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldApplicationDeadline, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldProfileID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContainsFold(FieldTitle, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContainsFold(FieldCompanyName, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Posting {
	return predicate.Posting(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Posting {
	return predicate.Posting(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContainsFold(FieldLocation, v))
}

// SalaryRangeEQ applies the EQ predicate on the "salary_range" field.
func SalaryRangeEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldSalaryRange, v))
}

// SalaryRangeNEQ applies the NEQ predicate on the "salary_range" field.
func SalaryRangeNEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldSalaryRange, v))
}

// SalaryRangeIn applies the In predicate on the "salary_range" field.
func SalaryRangeIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldSalaryRange, vs...))
}

// SalaryRangeNotIn applies the NotIn predicate on the "salary_range" field.
func SalaryRangeNotIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldSalaryRange, vs...))
}

// SalaryRangeGT applies the GT predicate on the "salary_range" field.
func SalaryRangeGT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldSalaryRange, v))
}

// SalaryRangeGTE applies the GTE predicate on the "salary_range" field.
func SalaryRangeGTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldSalaryRange, v))
}

// SalaryRangeLT applies the LT predicate on the "salary_range" field.
func SalaryRangeLT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldSalaryRange, v))
}

// SalaryRangeLTE applies the LTE predicate on the "salary_range" field.
func SalaryRangeLTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldSalaryRange, v))
}

// SalaryRangeContains applies the Contains predicate on the "salary_range" field.
func SalaryRangeContains(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContains(FieldSalaryRange, v))
}

// SalaryRangeHasPrefix applies the HasPrefix predicate on the "salary_range" field.
func SalaryRangeHasPrefix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasPrefix(FieldSalaryRange, v))
}

// SalaryRangeHasSuffix applies the HasSuffix predicate on the "salary_range" field.
func SalaryRangeHasSuffix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasSuffix(FieldSalaryRange, v))
}

// SalaryRangeIsNil applies the IsNil predicate on the "salary_range" field.
func SalaryRangeIsNil() predicate.Posting {
	return predicate.Posting(sql.FieldIsNull(FieldSalaryRange))
}

// SalaryRangeNotNil applies the NotNil predicate on the "salary_range" field.
func SalaryRangeNotNil() predicate.Posting {
	return predicate.Posting(sql.FieldNotNull(FieldSalaryRange))
}

// SalaryRangeEqualFold applies the EqualFold predicate on the "salary_range" field.
func SalaryRangeEqualFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEqualFold(FieldSalaryRange, v))
}

// SalaryRangeContainsFold applies the ContainsFold predicate on the "salary_range" field.
func SalaryRangeContainsFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContainsFold(FieldSalaryRange, v))
}

// ExperienceRequiredEQ applies the EQ predicate on the "experience_required" field.
func ExperienceRequiredEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldExperienceRequired, v))
}

// ExperienceRequiredNEQ applies the NEQ predicate on the "experience_required" field.
func ExperienceRequiredNEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldExperienceRequired, v))
}

// ExperienceRequiredIn applies the In predicate on the "experience_required" field.
func ExperienceRequiredIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldExperienceRequired, vs...))
}

// ExperienceRequiredNotIn applies the NotIn predicate on the "experience_required" field.
func ExperienceRequiredNotIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldExperienceRequired, vs...))
}

// ExperienceRequiredGT applies the GT predicate on the "experience_required" field.
func ExperienceRequiredGT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldExperienceRequired, v))
}

// ExperienceRequiredGTE applies the GTE predicate on the "experience_required" field.
func ExperienceRequiredGTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldExperienceRequired, v))
}

// ExperienceRequiredLT applies the LT predicate on the "experience_required" field.
func ExperienceRequiredLT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldExperienceRequired, v))
}

// ExperienceRequiredLTE applies the LTE predicate on the "experience_required" field.
func ExperienceRequiredLTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldExperienceRequired, v))
}

// ExperienceRequiredContains applies the Contains predicate on the "experience_required" field.
func ExperienceRequiredContains(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContains(FieldExperienceRequired, v))
}

// ExperienceRequiredHasPrefix applies the HasPrefix predicate on the "experience_required" field.
func ExperienceRequiredHasPrefix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasPrefix(FieldExperienceRequired, v))
}

// ExperienceRequiredHasSuffix applies the HasSuffix predicate on the "experience_required" field.
func ExperienceRequiredHasSuffix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasSuffix(FieldExperienceRequired, v))
}

// ExperienceRequiredIsNil applies the IsNil predicate on the "experience_required" field.
func ExperienceRequiredIsNil() predicate.Posting {
	return predicate.Posting(sql.FieldIsNull(FieldExperienceRequired))
}

// ExperienceRequiredNotNil applies the NotNil predicate on the "experience_required" field.
func ExperienceRequiredNotNil() predicate.Posting {
	return predicate.Posting(sql.FieldNotNull(FieldExperienceRequired))
}

// ExperienceRequiredEqualFold applies the EqualFold predicate on the "experience_required" field.
func ExperienceRequiredEqualFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEqualFold(FieldExperienceRequired, v))
}

// ExperienceRequiredContainsFold applies the ContainsFold predicate on the "experience_required" field.
func ExperienceRequiredContainsFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContainsFold(FieldExperienceRequired, v))
}

// SkillsRequiredIsNil applies the IsNil predicate on the "skills_required" field.
func SkillsRequiredIsNil() predicate.Posting {
	return predicate.Posting(sql.FieldIsNull(FieldSkillsRequired))
}

// SkillsRequiredNotNil applies the NotNil predicate on the "skills_required" field.
func SkillsRequiredNotNil() predicate.Posting {
	return predicate.Posting(sql.FieldNotNull(FieldSkillsRequired))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContainsFold(FieldDescription, v))
}

// RequirementsIsNil applies the IsNil predicate on the "requirements" field.
func RequirementsIsNil() predicate.Posting {
	return predicate.Posting(sql.FieldIsNull(FieldRequirements))
}

// RequirementsNotNil applies the NotNil predicate on the "requirements" field.
func RequirementsNotNil() predicate.Posting {
	return predicate.Posting(sql.FieldNotNull(FieldRequirements))
}

// BenefitsIsNil applies the IsNil predicate on the "benefits" field.
func BenefitsIsNil() predicate.Posting {
	return predicate.Posting(sql.FieldIsNull(FieldBenefits))
}

// BenefitsNotNil applies the NotNil predicate on the "benefits" field.
func BenefitsNotNil() predicate.Posting {
	return predicate.Posting(sql.FieldNotNull(FieldBenefits))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldJobType, vs...))
}

// JobTypeGT applies the GT predicate on the "job_type" field.
func JobTypeGT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldJobType, v))
}

// JobTypeGTE applies the GTE predicate on the "job_type" field.
func JobTypeGTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldJobType, v))
}

// JobTypeLT applies the LT predicate on the "job_type" field.
func JobTypeLT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldJobType, v))
}

// JobTypeLTE applies the LTE predicate on the "job_type" field.
func JobTypeLTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldJobType, v))
}

// JobTypeContains applies the Contains predicate on the "job_type" field.
func JobTypeContains(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContains(FieldJobType, v))
}

// JobTypeHasPrefix applies the HasPrefix predicate on the "job_type" field.
func JobTypeHasPrefix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasPrefix(FieldJobType, v))
}

// JobTypeHasSuffix applies the HasSuffix predicate on the "job_type" field.
func JobTypeHasSuffix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasSuffix(FieldJobType, v))
}

// JobTypeEqualFold applies the EqualFold predicate on the "job_type" field.
func JobTypeEqualFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEqualFold(FieldJobType, v))
}

// JobTypeContainsFold applies the ContainsFold predicate on the "job_type" field.
func JobTypeContainsFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContainsFold(FieldJobType, v))
}

// WorkModeEQ applies the EQ predicate on the "work_mode" field.
func WorkModeEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldWorkMode, v))
}

// WorkModeNEQ applies the NEQ predicate on the "work_mode" field.
func WorkModeNEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldWorkMode, v))
}

// WorkModeIn applies the In predicate on the "work_mode" field.
func WorkModeIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldWorkMode, vs...))
}

// WorkModeNotIn applies the NotIn predicate on the "work_mode" field.
func WorkModeNotIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldWorkMode, vs...))
}

// WorkModeGT applies the GT predicate on the "work_mode" field.
func WorkModeGT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldWorkMode, v))
}

// WorkModeGTE applies the GTE predicate on the "work_mode" field.
func WorkModeGTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldWorkMode, v))
}

// WorkModeLT applies the LT predicate on the "work_mode" field.
func WorkModeLT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldWorkMode, v))
}

// WorkModeLTE applies the LTE predicate on the "work_mode" field.
func WorkModeLTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldWorkMode, v))
}

// WorkModeContains applies the Contains predicate on the "work_mode" field.
func WorkModeContains(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContains(FieldWorkMode, v))
}

// WorkModeHasPrefix applies the HasPrefix predicate on the "work_mode" field.
func WorkModeHasPrefix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasPrefix(FieldWorkMode, v))
}

// WorkModeHasSuffix applies the HasSuffix predicate on the "work_mode" field.
func WorkModeHasSuffix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasSuffix(FieldWorkMode, v))
}

// WorkModeEqualFold applies the EqualFold predicate on the "work_mode" field.
func WorkModeEqualFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEqualFold(FieldWorkMode, v))
}

// WorkModeContainsFold applies the ContainsFold predicate on the "work_mode" field.
func WorkModeContainsFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContainsFold(FieldWorkMode, v))
}

// ApplicationDeadlineEQ applies the EQ predicate on the "application_deadline" field.
func ApplicationDeadlineEQ(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldApplicationDeadline, v))
}

// ApplicationDeadlineNEQ applies the NEQ predicate on the "application_deadline" field.
func ApplicationDeadlineNEQ(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldApplicationDeadline, v))
}

// ApplicationDeadlineIn applies the In predicate on the "application_deadline" field.
func ApplicationDeadlineIn(vs ...time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldApplicationDeadline, vs...))
}

// ApplicationDeadlineNotIn applies the NotIn predicate on the "application_deadline" field.
func ApplicationDeadlineNotIn(vs ...time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldApplicationDeadline, vs...))
}

// ApplicationDeadlineGT applies the GT predicate on the "application_deadline" field.
func ApplicationDeadlineGT(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldApplicationDeadline, v))
}

// ApplicationDeadlineGTE applies the GTE predicate on the "application_deadline" field.
func ApplicationDeadlineGTE(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldApplicationDeadline, v))
}

// ApplicationDeadlineLT applies the LT predicate on the "application_deadline" field.
func ApplicationDeadlineLT(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldApplicationDeadline, v))
}

// ApplicationDeadlineLTE applies the LTE predicate on the "application_deadline" field.
func ApplicationDeadlineLTE(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldApplicationDeadline, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Posting {
	return predicate.Posting(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Posting {
	return predicate.Posting(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Posting {
	return predicate.Posting(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.Posting {
	return predicate.Posting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.Posting {
	return predicate.Posting(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Posting {
	return predicate.Posting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ParseJob) predicate.Posting {
	return predicate.Posting(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Posting) predicate.Posting {
	return predicate.Posting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Posting) predicate.Posting {
	return predicate.Posting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Posting) predicate.Posting {
	return predicate.Posting(sql.NotPredicates(p))
}
