package models

// OnlineOfficeHour is a recurring remote tutoring window for a tutor assignment.
// Times and weekday are kept as free-form strings.
type OnlineOfficeHour struct {
	ID              int64            `json:"id"`
	TutorAssignment *TutorAssignment `json:"tutorAssignment"`
	DayOfWeek       string           `json:"dayOfWeek"`
	StartTime       string           `json:"startTime"`
	EndTime         string           `json:"endTime"`
	ZoomRoomLink    string           `json:"zoomRoomLink"`
	Notes           string           `json:"notes"`
}
