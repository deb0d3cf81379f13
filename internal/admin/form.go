package admin

import (
	"bytes"
	"html/template"
	"reflect"
	"strings"

	"hooksaurus/internal/domain"
	"hooksaurus/internal/validate"
)

// Field is one rendered input. Value is always the raw string so absent
// values show as blank.
type Field struct {
	Name     string
	Label    string
	Type     string // text, textarea, select, email, url, tel, password, datetime-local
	Value    string
	Options  []string
	Required bool
	Error    string
}

// Form is the markup model for insert and detail views.
type Form struct {
	Kind      Kind
	Action    string
	Method    string // post | put
	Submit    string
	Fields    []Field
	Etag      domain.Etag
	CSRFToken string
	Error     string
}

func insertAction(k Kind) string { return "/admin/tables/" + k.Slug() + "/insert" }

func recordAction(k Kind, pk string) string { return "/admin/tables/" + k.Slug() + "/" + pk }

// newForm reflects over a form-input struct using its form, label, input,
// options and validate tags.
func newForm(k Kind, in any, etag domain.Etag) *Form {
	rv := reflect.Indirect(reflect.ValueOf(in))
	rt := rv.Type()
	f := &Form{Kind: k, Etag: etag}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := sf.Tag.Get("form")
		if name == "" || name == "-" || sf.Type.Kind() != reflect.String {
			continue
		}
		fld := Field{
			Name:     name,
			Label:    sf.Tag.Get("label"),
			Type:     sf.Tag.Get("input"),
			Value:    rv.Field(i).String(),
			Required: hasRule(sf.Tag.Get("validate"), "required"),
		}
		if fld.Label == "" {
			fld.Label = name
		}
		if fld.Type == "" {
			fld.Type = "text"
		}
		if opts := sf.Tag.Get("options"); opts != "" {
			fld.Options = strings.Split(opts, "|")
		}
		f.Fields = append(f.Fields, fld)
	}
	return f
}

func hasRule(rules, rule string) bool {
	for _, r := range strings.Split(rules, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

func (f *Form) attach(errs validate.FieldErrors) {
	for i := range f.Fields {
		if msg, ok := errs[f.Fields[i].Name]; ok {
			f.Fields[i].Error = msg
		}
	}
}

// Names lists every input name the form submits, hidden inputs included.
func (f *Form) Names() []string {
	out := make([]string, 0, len(f.Fields)+2)
	for _, fld := range f.Fields {
		out = append(out, fld.Name)
	}
	out = append(out, "etag")
	if f.CSRFToken != "" {
		out = append(out, "csrf")
	}
	return out
}

// Value returns the current value of the named input.
func (f *Form) Value(name string) string {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld.Value
		}
	}
	return ""
}

var formTmpl = template.Must(template.New("form").Parse(`<form class="uk-form-stacked admin-form" id="form-{{.Kind.Slug}}"
  method="post" action="{{.Action}}"{{if eq .Method "put"}} hx-put="{{.Action}}"{{else}} hx-post="{{.Action}}"{{end}} hx-target="#admin-main" hx-swap="innerHTML">
{{- with .Error}}
<div class="uk-alert-danger" uk-alert><p>{{.}}</p></div>
{{- end}}
<input type="hidden" name="etag" value="{{.Etag}}">
{{- if .CSRFToken}}
<input type="hidden" name="csrf" value="{{.CSRFToken}}">
{{- end}}
{{- range .Fields}}
<div class="uk-margin">
<label class="uk-form-label" for="f-{{.Name}}">{{.Label}}</label>
<div class="uk-form-controls">
{{- if eq .Type "textarea"}}
<textarea class="uk-textarea" id="f-{{.Name}}" name="{{.Name}}" rows="4"{{if .Required}} required{{end}}>{{.Value}}</textarea>
{{- else if eq .Type "select"}}
{{- $v := .Value}}
<select class="uk-select" id="f-{{.Name}}" name="{{.Name}}"{{if .Required}} required{{end}}>
<option value=""></option>
{{- range .Options}}
<option value="{{.}}"{{if eq . $v}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
{{- else}}
<input class="uk-input" type="{{.Type}}" id="f-{{.Name}}" name="{{.Name}}" value="{{.Value}}"{{if .Required}} required{{end}}>
{{- end}}
</div>
{{- with .Error}}
<p class="uk-text-danger uk-text-small field-error">{{.}}</p>
{{- end}}
</div>
{{- end}}
<button class="uk-button uk-button-primary" type="submit">{{.Submit}}</button>
</form>`))

// HTML renders the form. Every value passes through html/template escaping.
func (f *Form) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := formTmpl.Execute(&buf, f); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
