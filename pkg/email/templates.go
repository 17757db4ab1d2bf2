package email

import "fmt"

// ReminderData feeds the appointment reminder templates.
type ReminderData struct {
	PatientName     string
	Email           string
	Date            string
	Time            string
	AppointmentType string
	ClinicianName   string
	AppName         string
}

// BuildAppointmentReminderEmail creates the reminder sent on the day of an
// appointment.
func BuildAppointmentReminderEmail(data ReminderData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "NutriPlan"
	}
	clinician := data.ClinicianName
	if clinician == "" {
		clinician = "sua nutricionista"
	}

	subject := fmt.Sprintf("Lembrete: consulta hoje às %s", data.Time)

	textBody := fmt.Sprintf(`Olá %s,

Passando para lembrar da sua consulta de hoje:

Data: %s
Horário: %s
Tipo: %s

Em caso de imprevisto, responda este e-mail para reagendar.

Até logo,
%s
%s`,
		data.PatientName, data.Date, data.Time, data.AppointmentType, clinician, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #903c4c;">Olá %s,</h2>
    <p>Passando para lembrar da sua consulta de hoje:</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 6px 12px; color: #6b7280;">Data</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Horário</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Tipo</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
    </table>
    <p>Em caso de imprevisto, responda este e-mail para reagendar.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Até logo,<br>%s<br>%s</p>
</body>
</html>`,
		data.PatientName, data.Date, data.Time, data.AppointmentType, clinician, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
