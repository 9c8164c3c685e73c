package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const TemplateWelcome = "welcome"

var welcomeTmpl = template.Must(template.New(TemplateWelcome).Parse(`
<html>
<body style="font-family:Arial,Helvetica,sans-serif;color:#1f2d1f;">
  <h2>Welcome to GreenCycle, {{.Name}}!</h2>
  <p>Your account ({{.Email}}) is ready. Schedule your first waste pickup
  and start earning reward points for every kilogram you recycle.</p>
  <p>Thanks for keeping your neighborhood green.</p>
</body>
</html>
`))

// Render returns the subject, text and HTML body for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateWelcome:
		var buf bytes.Buffer
		if err := welcomeTmpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to GreenCycle"
		text = fmt.Sprintf("Welcome to GreenCycle, %v! Your account is ready.", data["Name"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}
