// Package export renders patient and appointment listings as xlsx workbooks.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	PatientsSheet     = "Patients"
	AppointmentsSheet = "Appointments"

	dateLayout = "2006-01-02"
)

var patientHeaders = []string{"First Name", "Last Name", "Email", "Phone", "Gender", "Blood Group", "Status", "Medical History"}

var appointmentHeaders = []string{"Date", "Time", "Patient", "Doctor", "Department", "Reason", "Status", "Duration"}

func Patients(patients []models.Patient) (*bytes.Buffer, error) {
	file := newWorkbook(PatientsSheet, patientHeaders)
	for i, p := range patients {
		appendRow(file, PatientsSheet, i, []interface{}{
			p.FirstName,
			p.LastName,
			p.Email,
			p.Phone,
			p.Gender,
			p.BloodGroup,
			p.Status,
			strings.Join(p.MedicalHistory, ", "),
		})
	}
	return file.WriteToBuffer()
}

// Appointments writes one row per appointment. References that no longer
// resolve are written as empty cells.
func Appointments(apts []models.AppointmentDetail) (*bytes.Buffer, error) {
	file := newWorkbook(AppointmentsSheet, appointmentHeaders)
	for i, a := range apts {
		var patient, doctor, department string
		if p, ok := a.Patient.Resolved(); ok {
			patient = p.FullName()
		}
		if d, ok := a.Doctor.Resolved(); ok {
			doctor = d.DisplayName()
		}
		if d, ok := a.Department.Resolved(); ok {
			department = d.Name
		}
		appendRow(file, AppointmentsSheet, i, []interface{}{
			a.AppointmentDate.UTC().Format(dateLayout),
			a.Time,
			patient,
			doctor,
			department,
			a.Reason,
			string(a.Status),
			a.Duration,
		})
	}
	return file.WriteToBuffer()
}

func newWorkbook(sheet string, headers []string) *excelize.File {
	file := excelize.NewFile()
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for i, h := range headers {
		file.SetCellValue(sheet, cell(i, 1), h)
	}
	return file
}

func appendRow(file *excelize.File, sheet string, index int, values []interface{}) {
	row := index + 2
	for col, v := range values {
		file.SetCellValue(sheet, cell(col, row), v)
	}
}

// cell names a cell by zero-based column and one-based row. Sheets here
// never exceed 26 columns.
func cell(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row)
}
