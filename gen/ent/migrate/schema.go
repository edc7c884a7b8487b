// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ParseJobsColumns holds the columns for the "parse_jobs" table.
	ParseJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "validation_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "posting_id", Type: field.TypeUUID, Nullable: true},
		{Name: "profile_id", Type: field.TypeUUID},
		{Name: "upload_id", Type: field.TypeUUID},
	}
	// ParseJobsTable holds the schema information for the "parse_jobs" table.
	ParseJobsTable = &schema.Table{
		Name:       "parse_jobs",
		Columns:    ParseJobsColumns,
		PrimaryKey: []*schema.Column{ParseJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_jobs_postings_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[10]},
				RefColumns: []*schema.Column{PostingsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "parse_jobs_profiles_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[11]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "parse_jobs_uploads_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[12]},
				RefColumns: []*schema.Column{UploadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_profile_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[11], ParseJobsColumns[4], ParseJobsColumns[2]},
			},
			{
				Name:    "parsejob_upload_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[12]},
			},
			{
				Name:    "parsejob_posting_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[10]},
			},
		},
	}
	// PostingsColumns holds the columns for the "postings" table.
	PostingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "salary_range", Type: field.TypeString, Nullable: true},
		{Name: "experience_required", Type: field.TypeString, Nullable: true},
		{Name: "skills_required", Type: field.TypeJSON, Nullable: true},
		{Name: "description", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "requirements", Type: field.TypeJSON, Nullable: true},
		{Name: "benefits", Type: field.TypeJSON, Nullable: true},
		{Name: "job_type", Type: field.TypeString},
		{Name: "work_mode", Type: field.TypeString},
		{Name: "application_deadline", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "status", Type: field.TypeString, Default: "OPEN"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// PostingsTable holds the schema information for the "postings" table.
	PostingsTable = &schema.Table{
		Name:       "postings",
		Columns:    PostingsColumns,
		PrimaryKey: []*schema.Column{PostingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "postings_profiles_postings",
				Columns:    []*schema.Column{PostingsColumns[16]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "posting_profile_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PostingsColumns[16], PostingsColumns[13], PostingsColumns[14]},
			},
			{
				Name:    "posting_status_application_deadline",
				Unique:  false,
				Columns: []*schema.Column{PostingsColumns[13], PostingsColumns[12]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// UploadsColumns holds the columns for the "uploads" table.
	UploadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// UploadsTable holds the schema information for the "uploads" table.
	UploadsTable = &schema.Table{
		Name:       "uploads",
		Columns:    UploadsColumns,
		PrimaryKey: []*schema.Column{UploadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "uploads_profiles_uploads",
				Columns:    []*schema.Column{UploadsColumns[8]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "upload_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{UploadsColumns[8], UploadsColumns[2]},
			},
			{
				Name:    "upload_profile_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{UploadsColumns[8], UploadsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ParseJobsTable,
		PostingsTable,
		ProfilesTable,
		UploadsTable,
	}
)

func init() {
	ParseJobsTable.ForeignKeys[0].RefTable = PostingsTable
	ParseJobsTable.ForeignKeys[1].RefTable = ProfilesTable
	ParseJobsTable.ForeignKeys[2].RefTable = UploadsTable
	ParseJobsTable.Annotation = &entsql.Annotation{
		Table: "parse_jobs",
	}
	PostingsTable.ForeignKeys[0].RefTable = ProfilesTable
	PostingsTable.Annotation = &entsql.Annotation{
		Table: "postings",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	UploadsTable.ForeignKeys[0].RefTable = ProfilesTable
	UploadsTable.Annotation = &entsql.Annotation{
		Table: "uploads",
	}
}
