// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CertificatesColumns holds the columns for the "certificates" table.
	CertificatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "certificate_number", Type: field.TypeString, Unique: true},
		{Name: "issue_date", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "enrollment_id", Type: field.TypeUUID, Unique: true},
	}
	// CertificatesTable holds the schema information for the "certificates" table.
	CertificatesTable = &schema.Table{
		Name:       "certificates",
		Columns:    CertificatesColumns,
		PrimaryKey: []*schema.Column{CertificatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "certificates_enrollments_certificate",
				Columns:    []*schema.Column{CertificatesColumns[6]},
				RefColumns: []*schema.Column{EnrollmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "certificate_user_id",
				Unique:  false,
				Columns: []*schema.Column{CertificatesColumns[1]},
			},
			{
				Name:    "certificate_course_id",
				Unique:  false,
				Columns: []*schema.Column{CertificatesColumns[2]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "instructor_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "subtitle", Type: field.TypeString, Default: ""},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "level", Type: field.TypeInt, Default: 0},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "thumbnail_url", Type: field.TypeString, Default: ""},
		{Name: "price", Type: field.TypeInt64, Default: 0},
		{Name: "discount_price", Type: field.TypeInt64, Nullable: true},
		{Name: "status", Type: field.TypeInt, Default: 0},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
		{Name: "number_of_rating", Type: field.TypeInt, Default: 0},
		{Name: "section_count", Type: field.TypeInt, Default: 0},
		{Name: "lesson_count", Type: field.TypeInt, Default: 0},
		{Name: "quiz_count", Type: field.TypeInt, Default: 0},
		{Name: "enrollment_count", Type: field.TypeInt, Default: 0},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_instructor_id",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[1]},
			},
			{
				Name:    "course_status",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[12]},
			},
			{
				Name:    "course_category",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[6]},
			},
		},
	}
	// EnrollmentsColumns holds the columns for the "enrollments" table.
	EnrollmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeInt, Default: 0},
		{Name: "progress", Type: field.TypeJSON, Nullable: true},
		{Name: "progress_percent", Type: field.TypeFloat64, Default: 0},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "course_id", Type: field.TypeUUID},
	}
	// EnrollmentsTable holds the schema information for the "enrollments" table.
	EnrollmentsTable = &schema.Table{
		Name:       "enrollments",
		Columns:    EnrollmentsColumns,
		PrimaryKey: []*schema.Column{EnrollmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "enrollments_courses_enrollments",
				Columns:    []*schema.Column{EnrollmentsColumns[10]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "enrollment_student_id_course_id",
				Unique:  true,
				Columns: []*schema.Column{EnrollmentsColumns[1], EnrollmentsColumns[10]},
			},
			{
				Name:    "enrollment_student_id",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentsColumns[1]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "content_type", Type: field.TypeInt, Default: 0},
		{Name: "content_url", Type: field.TypeString, Default: ""},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "order", Type: field.TypeInt, Default: 0},
		{Name: "is_previewable", Type: field.TypeBool, Default: false},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "section_id", Type: field.TypeUUID},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_sections_lessons",
				Columns:    []*schema.Column{LessonsColumns[12]},
				RefColumns: []*schema.Column{SectionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_section_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[12]},
			},
			{
				Name:    "lesson_section_id_order",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[12], LessonsColumns[7]},
			},
			{
				Name:    "lesson_course_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1]},
			},
		},
	}
	// QuizsColumns holds the columns for the "quizs" table.
	QuizsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "passing_score", Type: field.TypeFloat64, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 0},
		{Name: "is_required", Type: field.TypeBool, Default: false},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "section_id", Type: field.TypeUUID, Unique: true},
	}
	// QuizsTable holds the schema information for the "quizs" table.
	QuizsTable = &schema.Table{
		Name:       "quizs",
		Columns:    QuizsColumns,
		PrimaryKey: []*schema.Column{QuizsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quizs_sections_quiz",
				Columns:    []*schema.Column{QuizsColumns[9]},
				RefColumns: []*schema.Column{SectionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quiz_course_id",
				Unique:  false,
				Columns: []*schema.Column{QuizsColumns[1]},
			},
		},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "user", Type: field.TypeJSON, Nullable: true},
		{Name: "enrollment_id", Type: field.TypeUUID},
		{Name: "rating", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeUUID},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_courses_reviews",
				Columns:    []*schema.Column{ReviewsColumns[8]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "review_user_id_course_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewsColumns[1], ReviewsColumns[8]},
			},
			{
				Name:    "review_course_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[8]},
			},
		},
	}
	// SectionsColumns holds the columns for the "sections" table.
	SectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "order", Type: field.TypeInt, Default: 0},
		{Name: "is_published", Type: field.TypeBool, Default: false},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeUUID},
	}
	// SectionsTable holds the schema information for the "sections" table.
	SectionsTable = &schema.Table{
		Name:       "sections",
		Columns:    SectionsColumns,
		PrimaryKey: []*schema.Column{SectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sections_courses_sections",
				Columns:    []*schema.Column{SectionsColumns[8]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "section_course_id",
				Unique:  false,
				Columns: []*schema.Column{SectionsColumns[8]},
			},
			{
				Name:    "section_course_id_order",
				Unique:  false,
				Columns: []*schema.Column{SectionsColumns[8], SectionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CertificatesTable,
		CoursesTable,
		EnrollmentsTable,
		LessonsTable,
		QuizsTable,
		ReviewsTable,
		SectionsTable,
	}
)

func init() {
	CertificatesTable.ForeignKeys[0].RefTable = EnrollmentsTable
	EnrollmentsTable.ForeignKeys[0].RefTable = CoursesTable
	LessonsTable.ForeignKeys[0].RefTable = SectionsTable
	QuizsTable.ForeignKeys[0].RefTable = SectionsTable
	ReviewsTable.ForeignKeys[0].RefTable = CoursesTable
	SectionsTable.ForeignKeys[0].RefTable = CoursesTable
}
