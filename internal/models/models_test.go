package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOfficeHour() OnlineOfficeHour {
	return OnlineOfficeHour{
		ID: 1,
		TutorAssignment: &TutorAssignment{
			ID:             1,
			Course:         Course{ID: 1, Name: "CMPSC 156", Quarter: "F20", InstructorFirstName: "Phill", InstructorLastName: "Conrad", InstructorEmail: "phtcon@ucsb.edu"},
			Tutor:          Tutor{ID: 1, FirstName: "Chris", LastName: "Gaucho", Email: "cgaucho@ucsb.edu"},
			AssignmentType: "TA",
		},
		DayOfWeek:    "Wednesday",
		StartTime:    "8:00",
		EndTime:      "10:00",
		ZoomRoomLink: "link",
		Notes:        "notes",
	}
}

func TestOnlineOfficeHourJSONRoundTrip(t *testing.T) {
	original := sampleOfficeHour()

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded OnlineOfficeHour
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original, decoded)
}

func TestOnlineOfficeHourJSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(sampleOfficeHour())
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"id", "tutorAssignment", "dayOfWeek", "startTime", "endTime", "zoomRoomLink", "notes"} {
		assert.Contains(t, fields, key)
	}

	var assignment map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(fields["tutorAssignment"], &assignment))
	assert.Contains(t, assignment, "course")
	assert.Contains(t, assignment, "tutor")
	assert.Contains(t, assignment, "assignmentType")
}

func TestOnlineOfficeHourWithoutAssignment(t *testing.T) {
	var decoded OnlineOfficeHour
	require.NoError(t, json.Unmarshal([]byte(`{"dayOfWeek":"Monday"}`), &decoded))
	assert.Nil(t, decoded.TutorAssignment)
	assert.Zero(t, decoded.ID)
}

func TestTutorFullName(t *testing.T) {
	assert.Equal(t, "Chris Gaucho", Tutor{FirstName: "Chris", LastName: "Gaucho"}.FullName())
	assert.Equal(t, "Chris", Tutor{FirstName: "Chris"}.FullName())
	assert.Equal(t, "Gaucho", Tutor{LastName: "Gaucho"}.FullName())
}
