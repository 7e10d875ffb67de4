package notification

import (
	"html/template"
	"strings"

	"physioheal/models"
)

const bookingEmailSubject = "New Appointment Booking - PhysioHeal"

var bookingEmailTmpl = template.Must(template.New("bookingEmail").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #333;">New Appointment Booking</h2>

    <h3>Personal Details</h3>
    <p><strong>Name:</strong> {{.Record.PersonalDetails.FirstName}} {{.Record.PersonalDetails.LastName}}</p>
    <p><strong>Phone:</strong> {{.Record.PersonalDetails.Phone}}</p>
    <p><strong>Email:</strong> {{.Record.PersonalDetails.Email}}</p>
    <p><strong>Age/Gender:</strong> {{.Record.PersonalDetails.Age}} / {{.Record.PersonalDetails.Gender}}</p>
    <p><strong>Address:</strong> {{.Record.PersonalDetails.Address}}</p>

    <h3>Pain Details</h3>
    <p><strong>Description:</strong> {{.Record.PainDetails.Description}}</p>
    <p><strong>Duration:</strong> {{.Record.PainDetails.Duration}}</p>
    <p><strong>Previous Treatment:</strong> {{.PreviousTreatment}}</p>
    <p><strong>Additional Notes:</strong> {{.AdditionalNotes}}</p>

    <h3>Selected Areas &amp; Conditions</h3>
    <ul>
        {{range .Parts}}
        <li>
            <strong>{{.Name}}</strong>
            (Pain Level: {{.PainLevel}}/10{{if .Side}}, Side: {{.Side}}{{end}})
            {{if .Conditions}}<br><em>Conditions: {{.Conditions}}</em>{{end}}
        </li>
        {{end}}
    </ul>

    <p style="margin-top: 20px; font-size: 12px; color: #888;">
        Booking ID: {{.Record.ID}}<br>
        Created At: {{.CreatedAt}}
    </p>
</div>
`))

type bookingEmailPart struct {
	Name       string
	PainLevel  int
	Side       models.Side
	Conditions string
}

type bookingEmailData struct {
	Record            models.BookingRecord
	PreviousTreatment string
	AdditionalNotes   string
	CreatedAt         string
	Parts             []bookingEmailPart
}

// renderBookingEmail builds the HTML notification body for a booking.
func renderBookingEmail(record models.BookingRecord) (string, error) {
	data := bookingEmailData{
		Record:            record,
		PreviousTreatment: orDefault(record.PainDetails.PreviousTreatment, "None/Not provided"),
		AdditionalNotes:   orDefault(record.PainDetails.AdditionalNotes, "None"),
		CreatedAt:         record.CreatedAt.Format("1/2/2006, 3:04:05 PM"),
	}
	for _, part := range record.BodyParts {
		data.Parts = append(data.Parts, bookingEmailPart{
			Name:       strings.ToUpper(part.PartID),
			PainLevel:  part.PainLevel,
			Side:       part.Side,
			Conditions: strings.Join(record.SelectedConditions[part.PartID], ", "),
		})
	}

	var sb strings.Builder
	if err := bookingEmailTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
