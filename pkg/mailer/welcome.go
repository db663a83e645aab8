package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// WelcomeTemplate is the template name carried by signup email jobs.
const WelcomeTemplate = "welcome"

var welcomeHTML = template.Must(template.New(WelcomeTemplate).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome, {{.FirstName}}!</h2>
    <p>Your account has been created. You can now browse and save property listings.</p>
    <p>If you did not sign up for this account, please ignore this email.</p>
  </body>
</html>`))

// RenderWelcome renders the welcome email for a signup job.
func RenderWelcome(data map[string]any) (subject, text, html string, err error) {
	var buf bytes.Buffer
	if err := welcomeHTML.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	first := ""
	if v, ok := data["FirstName"]; ok {
		first = fmt.Sprintf("%v", v)
	}
	text = fmt.Sprintf("Welcome, %s! Your account has been created.", first)
	return "Welcome to your new account", text, buf.String(), nil
}
