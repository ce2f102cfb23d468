package models

// Course is a course offering that tutors can be assigned to.
type Course struct {
	ID                  int64  `db:"id" json:"id"`
	Name                string `db:"name" json:"name"`
	Quarter             string `db:"quarter" json:"quarter"`
	InstructorFirstName string `db:"instructor_first_name" json:"instructorFirstName"`
	InstructorLastName  string `db:"instructor_last_name" json:"instructorLastName"`
	InstructorEmail     string `db:"instructor_email" json:"instructorEmail"`
}
