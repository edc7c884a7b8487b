package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/campushire/placement-portal/constants"
	"github.com/campushire/placement-portal/db/ent/schema/utils"
)

// Posting is a published job posting built from a parsed description.
type Posting struct{ ent.Schema }

func (Posting) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "postings"},
	}
}

func (Posting) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("company_name").NotEmpty(),
		field.String("location").Optional().Nillable(),
		field.String("salary_range").Optional().Nillable(),
		field.String("experience_required").Optional().Nillable(),
		field.Strings("skills_required").Optional(),
		field.String("description").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Strings("requirements").Optional(),
		field.Strings("benefits").Optional(),
		field.String("job_type").NotEmpty().
			Validate(utils.EnumValidator(constants.JobTypes...)),
		field.String("work_mode").NotEmpty().
			Validate(utils.EnumValidator(constants.WorkModes...)),
		field.Time("application_deadline").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.PostingStatuses...)).
			Default(string(constants.PostingOpen)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Posting) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY postings -> ONE profile
		edge.From("profile", Profile.Type).
			Ref("postings").
			Field("profile_id").
			Required().
			Unique(),
		// ONE posting -> MANY jobs
		edge.To("jobs", ParseJob.Type),
	}
}

func (Posting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "status", "created_at"),
		index.Fields("status", "application_deadline"),
	}
}
