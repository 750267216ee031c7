package notification

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const (
	KindRegistration  = "registration"
	KindPasswordReset = "password_reset"
)

type mailTemplate struct {
	subject string
	body    string
}

var mailTemplates = map[string]mailTemplate{
	KindRegistration: {
		subject: `Welcome to {{ .Company | trim | default "the Company" }}`,
		body: `Dear User,

Your account has been successfully created.

Employee ID: {{ .EmpID }}

Temporary Password: {{ .Password }}

Please log in and change your password at your earliest convenience.

Best Regards,
{{ .Company | trim | default "Company" }} Team
`,
	},
	KindPasswordReset: {
		subject: `{{ .Company | trim | default "Company" }} password reset`,
		body: `Dear User,

The password for employee ID {{ .EmpID }} has been reset.

Temporary Password: {{ .Password }}

Please log in and change your password at your earliest convenience.
If you did not ask for this, contact {{ .Company | trim | default "Company" }} HR.

Best Regards,
{{ .Company | trim | default "Company" }} Team
`,
	},
}

type templateData struct {
	Company  string
	EmpID    string
	Password string
}

type renderer struct {
	subjects map[string]*template.Template
	bodies   map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	r := &renderer{
		subjects: make(map[string]*template.Template, len(mailTemplates)),
		bodies:   make(map[string]*template.Template, len(mailTemplates)),
	}
	for kind, t := range mailTemplates {
		subject, err := template.New(kind + ".subject").Funcs(sprig.TxtFuncMap()).Parse(t.subject)
		if err != nil {
			return nil, fmt.Errorf("parse %s subject: %w", kind, err)
		}
		body, err := template.New(kind + ".body").Funcs(sprig.TxtFuncMap()).Parse(t.body)
		if err != nil {
			return nil, fmt.Errorf("parse %s body: %w", kind, err)
		}
		r.subjects[kind] = subject
		r.bodies[kind] = body
	}
	return r, nil
}

func (r *renderer) render(kind string, data templateData) (subject, body string, err error) {
	st, ok := r.subjects[kind]
	if !ok {
		return "", "", fmt.Errorf("unknown mail kind %q", kind)
	}
	var buf bytes.Buffer
	if err := st.Execute(&buf, data); err != nil {
		return "", "", err
	}
	subject = buf.String()

	buf.Reset()
	if err := r.bodies[kind].Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
