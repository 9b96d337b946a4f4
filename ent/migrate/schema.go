// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationColumns holds the columns for the "application" table.
	ApplicationColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "external_user_id", Type: field.TypeString, Nullable: true},
		{Name: "resume_id", Type: field.TypeUUID, Nullable: true},
		{Name: "interview_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "viewed", "interviewing", "offered", "rejected", "withdrawn"}, Default: "pending"},
		{Name: "match_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "viewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
	}
	// ApplicationTable holds the schema information for the "application" table.
	ApplicationTable = &schema.Table{
		Name:       "application",
		Columns:    ApplicationColumns,
		PrimaryKey: []*schema.Column{ApplicationColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "application_jobs_applications",
				Columns:    []*schema.Column{ApplicationColumns[10]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "application_users_applications",
				Columns:    []*schema.Column{ApplicationColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "application_job_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{ApplicationColumns[10], ApplicationColumns[11]},
			},
			{
				Name:    "application_job_id_external_user_id",
				Unique:  true,
				Columns: []*schema.Column{ApplicationColumns[10], ApplicationColumns[1]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "external_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "external_user_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "messages", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
	}
	// EnterprisesColumns holds the columns for the "enterprises" table.
	EnterprisesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EnterprisesTable holds the schema information for the "enterprises" table.
	EnterprisesTable = &schema.Table{
		Name:       "enterprises",
		Columns:    EnterprisesColumns,
		PrimaryKey: []*schema.Column{EnterprisesColumns[0]},
	}
	// InterviewsColumns holds the columns for the "interviews" table.
	InterviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "external_user_id", Type: field.TypeString, Nullable: true},
		{Name: "job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed"}, Default: "in_progress"},
		{Name: "current_index", Type: field.TypeInt, Default: 0},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InterviewsTable holds the schema information for the "interviews" table.
	InterviewsTable = &schema.Table{
		Name:       "interviews",
		Columns:    InterviewsColumns,
		PrimaryKey: []*schema.Column{InterviewsColumns[0]},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "salary_range", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "closed", "archived"}, Default: "draft"},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "enterprise_id", Type: field.TypeUUID},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_enterprises_jobs",
				Columns:    []*schema.Column{JobsColumns[9]},
				RefColumns: []*schema.Column{EnterprisesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ResumesColumns holds the columns for the "resumes" table.
	ResumesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "external_user_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "resume_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "education", Type: field.TypeJSON, Nullable: true},
		{Name: "experience", Type: field.TypeJSON, Nullable: true},
		{Name: "contact", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ResumesTable holds the schema information for the "resumes" table.
	ResumesTable = &schema.Table{
		Name:       "resumes",
		Columns:    ResumesColumns,
		PrimaryKey: []*schema.Column{ResumesColumns[0]},
	}
	// SchoolsColumns holds the columns for the "schools" table.
	SchoolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SchoolsTable holds the schema information for the "schools" table.
	SchoolsTable = &schema.Table{
		Name:       "schools",
		Columns:    SchoolsColumns,
		PrimaryKey: []*schema.Column{SchoolsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString, Size: 2147483647},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "enterprise", "school", "government", "student"}, Default: "student"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "enterprise_id", Type: field.TypeUUID, Nullable: true},
		{Name: "school_id", Type: field.TypeUUID, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_enterprises_members",
				Columns:    []*schema.Column{UsersColumns[7]},
				RefColumns: []*schema.Column{EnterprisesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "users_schools_students",
				Columns:    []*schema.Column{UsersColumns[8]},
				RefColumns: []*schema.Column{SchoolsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationTable,
		ConversationsTable,
		EnterprisesTable,
		InterviewsTable,
		JobsTable,
		ResumesTable,
		SchoolsTable,
		UsersTable,
	}
)

func init() {
	ApplicationTable.ForeignKeys[0].RefTable = JobsTable
	ApplicationTable.ForeignKeys[1].RefTable = UsersTable
	ApplicationTable.Annotation = &entsql.Annotation{
		Table: "application",
	}
	JobsTable.ForeignKeys[0].RefTable = EnterprisesTable
	UsersTable.ForeignKeys[0].RefTable = EnterprisesTable
	UsersTable.ForeignKeys[1].RefTable = SchoolsTable
}
