package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ucsb-cslas/cslas-api/internal/models"
)

const selectOfficeHours = `
SELECT oh.id, oh.day_of_week, oh.start_time, oh.end_time, oh.zoom_room_link, oh.notes,
       ta.id AS ta_id, ta.assignment_type AS ta_assignment_type,
       c.id AS course_id, c.name AS course_name, c.quarter AS course_quarter,
       c.instructor_first_name AS course_instructor_first_name,
       c.instructor_last_name AS course_instructor_last_name,
       c.instructor_email AS course_instructor_email,
       t.id AS tutor_id, t.first_name AS tutor_first_name, t.last_name AS tutor_last_name, t.email AS tutor_email
FROM online_office_hours oh
LEFT JOIN tutor_assignments ta ON ta.id = oh.tutor_assignment_id
LEFT JOIN courses c ON c.id = ta.course_id
LEFT JOIN tutors t ON t.id = ta.tutor_id`

// officeHourRow is the flattened join of an office hour and its assignment graph.
type officeHourRow struct {
	ID           int64  `db:"id"`
	DayOfWeek    string `db:"day_of_week"`
	StartTime    string `db:"start_time"`
	EndTime      string `db:"end_time"`
	ZoomRoomLink string `db:"zoom_room_link"`
	Notes        string `db:"notes"`

	AssignmentID   sql.NullInt64  `db:"ta_id"`
	AssignmentType sql.NullString `db:"ta_assignment_type"`

	CourseID                  sql.NullInt64  `db:"course_id"`
	CourseName                sql.NullString `db:"course_name"`
	CourseQuarter             sql.NullString `db:"course_quarter"`
	CourseInstructorFirstName sql.NullString `db:"course_instructor_first_name"`
	CourseInstructorLastName  sql.NullString `db:"course_instructor_last_name"`
	CourseInstructorEmail     sql.NullString `db:"course_instructor_email"`

	TutorID        sql.NullInt64  `db:"tutor_id"`
	TutorFirstName sql.NullString `db:"tutor_first_name"`
	TutorLastName  sql.NullString `db:"tutor_last_name"`
	TutorEmail     sql.NullString `db:"tutor_email"`
}

func (r officeHourRow) toModel() models.OnlineOfficeHour {
	oh := models.OnlineOfficeHour{
		ID:           r.ID,
		DayOfWeek:    r.DayOfWeek,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		ZoomRoomLink: r.ZoomRoomLink,
		Notes:        r.Notes,
	}
	if !r.AssignmentID.Valid {
		return oh
	}
	oh.TutorAssignment = &models.TutorAssignment{
		ID:             r.AssignmentID.Int64,
		AssignmentType: r.AssignmentType.String,
		Course: models.Course{
			ID:                  r.CourseID.Int64,
			Name:                r.CourseName.String,
			Quarter:             r.CourseQuarter.String,
			InstructorFirstName: r.CourseInstructorFirstName.String,
			InstructorLastName:  r.CourseInstructorLastName.String,
			InstructorEmail:     r.CourseInstructorEmail.String,
		},
		Tutor: models.Tutor{
			ID:        r.TutorID.Int64,
			FirstName: r.TutorFirstName.String,
			LastName:  r.TutorLastName.String,
			Email:     r.TutorEmail.String,
		},
	}
	return oh
}

// OnlineOfficeHourRepository persists online office hours in PostgreSQL.
type OnlineOfficeHourRepository struct {
	db *sqlx.DB
}

// NewOnlineOfficeHourRepository constructs an OnlineOfficeHourRepository.
func NewOnlineOfficeHourRepository(db *sqlx.DB) *OnlineOfficeHourRepository {
	return &OnlineOfficeHourRepository{db: db}
}

// FindAll returns every office hour ordered by id.
func (r *OnlineOfficeHourRepository) FindAll(ctx context.Context) ([]models.OnlineOfficeHour, error) {
	var rows []officeHourRow
	if err := r.db.SelectContext(ctx, &rows, selectOfficeHours+" ORDER BY oh.id"); err != nil {
		return nil, fmt.Errorf("list online office hours: %w", err)
	}
	result := make([]models.OnlineOfficeHour, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toModel())
	}
	return result, nil
}

// FindByID fetches an office hour by id. It returns sql.ErrNoRows when absent.
func (r *OnlineOfficeHourRepository) FindByID(ctx context.Context, id int64) (*models.OnlineOfficeHour, error) {
	var row officeHourRow
	if err := r.db.GetContext(ctx, &row, selectOfficeHours+" WHERE oh.id = $1", id); err != nil {
		return nil, err
	}
	oh := row.toModel()
	return &oh, nil
}

// Save updates the office hour when its id exists and otherwise inserts it
// under a store-assigned id. The stored row is reloaded and returned.
func (r *OnlineOfficeHourRepository) Save(ctx context.Context, oh *models.OnlineOfficeHour) (*models.OnlineOfficeHour, error) {
	var assignmentID sql.NullInt64
	if oh.TutorAssignment != nil && oh.TutorAssignment.ID != 0 {
		assignmentID = sql.NullInt64{Int64: oh.TutorAssignment.ID, Valid: true}
	}

	var id int64
	if oh.ID != 0 {
		const query = `UPDATE online_office_hours SET tutor_assignment_id = $2, day_of_week = $3, start_time = $4,
end_time = $5, zoom_room_link = $6, notes = $7
WHERE id = $1 RETURNING id`
		err := r.db.GetContext(ctx, &id, query, oh.ID, assignmentID, oh.DayOfWeek, oh.StartTime, oh.EndTime, oh.ZoomRoomLink, oh.Notes)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update online office hour %d: %w", oh.ID, err)
		}
	}
	if id == 0 {
		const query = `INSERT INTO online_office_hours (tutor_assignment_id, day_of_week, start_time, end_time, zoom_room_link, notes)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
		if err := r.db.GetContext(ctx, &id, query, assignmentID, oh.DayOfWeek, oh.StartTime, oh.EndTime, oh.ZoomRoomLink, oh.Notes); err != nil {
			return nil, fmt.Errorf("insert online office hour: %w", err)
		}
	}

	saved, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload online office hour %d: %w", id, err)
	}
	return saved, nil
}

// DeleteByID removes an office hour. It returns sql.ErrNoRows when nothing was deleted.
func (r *OnlineOfficeHourRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM online_office_hours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete online office hour %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted office hour rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
