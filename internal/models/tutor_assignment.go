package models

// TutorAssignment links a tutor to a course with an assignment type such as "TA" or "LA".
type TutorAssignment struct {
	ID             int64  `json:"id"`
	Course         Course `json:"course"`
	Tutor          Tutor  `json:"tutor"`
	AssignmentType string `json:"assignmentType"`
}
