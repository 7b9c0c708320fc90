// Package renderer displays host function summaries.
//
// Every renderer shares the same presentation model: a headline formatted from a message
// template, followed for create and invoke calls by one line per parameter whose value is
// truncated to Options.MaxLength. Renderers that can carry it keep the full value next to the
// truncated one (the html title attribute, the yaml title field).
package renderer

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"text/template"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"

	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/hostfn"
)

//go:embed templates/text/*.tmpl templates/html/*.tmpl
var templateFS embed.FS

// Renderer IDs.
const (
	IDText  = "text"
	IDHTML  = "html"
	IDTable = "table"
	IDYAML  = "yaml"
)

// Renderer writes a summary in a concrete output format.
type Renderer interface {
	ID() string
	Render(w io.Writer, s hostfn.Summary) error
}

var (
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = (*HTMLRenderer)(nil)
	_ Renderer = (*TableRenderer)(nil)
	_ Renderer = (*YAMLRenderer)(nil)
)

type base struct {
	opts Options
	msgs messages
}

func newBase(opts Options) (base, error) {
	if err := opts.validate(); err != nil {
		return base{}, err
	}
	msgs, err := newMessages(opts.Messages)
	if err != nil {
		return base{}, err
	}

	return base{opts: opts, msgs: msgs}, nil
}

func (b base) display(s hostfn.Summary) (Display, error) {
	return newDisplay(s, b.opts, b.msgs)
}

// TextRenderer writes plain text.
type TextRenderer struct {
	base
	tmpl *template.Template
}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer(opts Options) (*TextRenderer, error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("summary.tmpl").ParseFS(templateFS, "templates/text/summary.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}

	return &TextRenderer{base: b, tmpl: tmpl}, nil
}

func (r *TextRenderer) ID() string { return IDText }

// Render implements Renderer.
func (r *TextRenderer) Render(w io.Writer, s hostfn.Summary) error {
	d, err := r.display(s)
	if err != nil {
		return err
	}

	return r.tmpl.Execute(w, d)
}

// HTMLRenderer writes an html fragment. Values are escaped; the full value of a truncated
// parameter is kept in the title attribute.
type HTMLRenderer struct {
	base
	tmpl *htmltemplate.Template
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer(opts Options) (*HTMLRenderer, error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}

	tmpl, err := htmltemplate.New("summary.tmpl").ParseFS(templateFS, "templates/html/summary.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}

	return &HTMLRenderer{base: b, tmpl: tmpl}, nil
}

func (r *HTMLRenderer) ID() string { return IDHTML }

// Render implements Renderer.
func (r *HTMLRenderer) Render(w io.Writer, s hostfn.Summary) error {
	d, err := r.display(s)
	if err != nil {
		return err
	}

	return r.tmpl.Execute(w, d)
}

// TableRenderer writes the headline followed by an ascii table of the parameters.
type TableRenderer struct {
	base
}

// NewTableRenderer creates a TableRenderer.
func NewTableRenderer(opts Options) (*TableRenderer, error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}

	return &TableRenderer{base: b}, nil
}

func (r *TableRenderer) ID() string { return IDTable }

// Render implements Renderer.
func (r *TableRenderer) Render(w io.Writer, s hostfn.Summary) error {
	d, err := r.display(s)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, d.Headline); err != nil {
		return err
	}
	if !d.Listed || len(d.Parameters) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		rows = append(rows, []string{p.Key, p.Value})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	return nil
}

// YAMLRenderer writes the presentation model as a yaml document.
type YAMLRenderer struct {
	base
}

// NewYAMLRenderer creates a YAMLRenderer.
func NewYAMLRenderer(opts Options) (*YAMLRenderer, error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}

	return &YAMLRenderer{base: b}, nil
}

func (r *YAMLRenderer) ID() string { return IDYAML }

// Render implements Renderer.
func (r *YAMLRenderer) Render(w io.Writer, s hostfn.Summary) error {
	d, err := r.display(s)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	_, err = w.Write(out)

	return err
}
