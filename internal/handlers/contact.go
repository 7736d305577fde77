package handlers

import (
	"net/http"
	"strings"

	"github.com/gpedrosad/mapra2/internal/contact"
	"github.com/gpedrosad/mapra2/internal/i18n"
)

// Form fields posted by the contact page besides name and email.
const (
	FieldMessage = "message"
	// FieldTouched carries the fields visited so far, comma separated.
	FieldTouched = "_touched"
	// FieldBlur names the field that just lost focus on a validation round trip.
	FieldBlur = "_blur"
)

// ContactView is the contact form page.
type ContactView struct {
	Title    string
	Subtitle string
	Action   string

	NameLabel    string
	EmailLabel   string
	MessageLabel string
	SubmitLabel  string

	NamePlaceholder    string
	EmailPlaceholder   string
	MessagePlaceholder string

	Name    string
	Email   string
	Message string

	NameError  string
	EmailError string
	Touched    string
	CanSubmit  bool
}

// FormFromRequest reads the posted contact form. The request must already be
// parsed.
func FormFromRequest(r *http.Request) *contact.Form {
	f := &contact.Form{
		Name:    r.PostFormValue(contact.FieldName),
		Email:   r.PostFormValue(contact.FieldEmail),
		Message: r.PostFormValue(FieldMessage),
	}
	for _, field := range strings.Split(r.PostFormValue(FieldTouched), ",") {
		f.Blur(field)
	}
	if b := r.PostFormValue(FieldBlur); b != "" {
		f.Blur(b)
	}
	return f
}

// BuildContact renders form state. A nil form is a pristine page.
func BuildContact(loc *i18n.Localizer, f *contact.Form) *ContactView {
	if f == nil {
		f = &contact.Form{}
	}
	return &ContactView{
		Title:              loc.T("cf_title"),
		Subtitle:           loc.T("cf_subtitle"),
		Action:             "/contacto",
		NameLabel:          loc.T("cf_name"),
		EmailLabel:         loc.T("cf_email"),
		MessageLabel:       loc.T("cf_message"),
		SubmitLabel:        loc.T("cf_submit"),
		NamePlaceholder:    loc.T("cf_placeholder_name"),
		EmailPlaceholder:   loc.T("cf_placeholder_email"),
		MessagePlaceholder: loc.T("cf_placeholder_message"),
		Name:               f.Name,
		Email:              f.Email,
		Message:            f.Message,
		NameError:          f.NameError(loc.Text),
		EmailError:         f.EmailError(loc.Text),
		Touched:            touchedFields(f),
		CanSubmit:          f.Valid(),
	}
}

func touchedFields(f *contact.Form) string {
	var out []string
	if f.Touched.Name {
		out = append(out, contact.FieldName)
	}
	if f.Touched.Email {
		out = append(out, contact.FieldEmail)
	}
	return strings.Join(out, ",")
}
