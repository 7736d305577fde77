package contact

import "strings"

// DefaultMessageTemplate is the prefilled WhatsApp message. Each token is
// replaced once.
const DefaultMessageTemplate = "Hola, soy {name} ({email}). {message}"

// Field names accepted by Blur.
const (
	FieldName  = "name"
	FieldEmail = "email"
)

// Touched records which fields have been visited.
type Touched struct {
	Name  bool
	Email bool
}

// Form is the contact form state.
type Form struct {
	Name    string
	Email   string
	Message string
	Touched Touched
}

// Blur marks a field as visited.
func (f *Form) Blur(field string) {
	switch field {
	case FieldName:
		f.Touched.Name = true
	case FieldEmail:
		f.Touched.Email = true
	}
}

// Valid reports whether the form may be submitted.
func (f *Form) Valid() bool {
	return strings.TrimSpace(f.Name) != "" && IsValidEmail(f.Email)
}

// NameError returns the localized name message once the field is touched.
func (f *Form) NameError(resolve func(string) string) string {
	if f.Touched.Name && strings.TrimSpace(f.Name) == "" {
		return resolve("cf_err_name")
	}
	return ""
}

// EmailError returns the localized email message once the field is touched.
func (f *Form) EmailError(resolve func(string) string) string {
	if f.Touched.Email && (strings.TrimSpace(f.Email) == "" || !IsValidEmail(f.Email)) {
		return resolve("cf_err_email")
	}
	return ""
}

// Text fills template with the trimmed field values.
func (f *Form) Text(template string) string {
	r := strings.Replace(template, "{name}", strings.TrimSpace(f.Name), 1)
	r = strings.Replace(r, "{email}", strings.TrimSpace(f.Email), 1)
	return strings.Replace(r, "{message}", strings.TrimSpace(f.Message), 1)
}

// Submit marks every field touched and, when valid, returns the WhatsApp
// link for the filled template.
func (f *Form) Submit(phone, template string) (string, bool) {
	f.Touched = Touched{Name: true, Email: true}
	if !f.Valid() {
		return "", false
	}
	if phone == "" {
		phone = DefaultPhone
	}
	if template == "" {
		template = DefaultMessageTemplate
	}
	return WhatsAppLink(phone, f.Text(template)), true
}
