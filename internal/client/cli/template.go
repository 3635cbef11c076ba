package cli

import "text/template"

const documentTemplateText = `
=== Document {{.Name}} ===

Vector:  {{.Vector}}
Length:  {{.Length}} character(s)
{{- if .Pending }}
Pending: {{.Pending}} operation(s) not yet sent
{{- end}}

---
{{.Text}}
---
`

const remoteDocumentTemplateText = `
=== Document {{.ID}} (server copy) ===

Vector:     {{.Vector}}
Operations: {{.Operations}}

---
{{.Text}}
---
`

var (
	documentTemplate       = template.Must(template.New("document").Parse(documentTemplateText))
	remoteDocumentTemplate = template.Must(template.New("remote").Parse(remoteDocumentTemplateText))
)

type documentView struct {
	Name    string
	Vector  string
	Text    string
	Length  int
	Pending int
}

type remoteDocumentView struct {
	ID         string
	Vector     string
	Text       string
	Operations int
}
