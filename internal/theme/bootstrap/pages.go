package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/legacyconversions"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/frontmatter"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/naming"
)

type memberView struct {
	Name      string
	Anchor    safehtml.Identifier
	Href      string
	Signature string
	IsBeta    bool
}

type pageView struct {
	Name       string
	Package    string
	Import     string
	Kind       apimodel.Kind
	Keyword    string
	IsFunction bool
	IsBeta     bool
	Signature  string
	Lead       string
	Members    []memberView
}

type indexExport struct {
	Name   string
	Href   string
	Kind   apimodel.Kind
	IsBeta bool
}

type indexPackage struct {
	Name       string
	Summary    safehtml.HTML
	HasSummary bool
	Exports    []indexExport
}

type indexView struct {
	Packages []indexPackage
}

// buildPages renders every symbol page and the index, in write order.
func (t *Theme) buildPages(ctx context.Context) ([]apimodel.RenderedPage, error) {
	var pages []apimodel.RenderedPage
	owners := make(map[string]string)
	index := indexView{}

	for _, pkg := range t.packages.Sorted() {
		summary, err := markdown.RenderSummary(string(pkg.Summary))
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CategoryRender, "failed to render summary").
				WithContext("package", pkg.Name)
		}
		entry := indexPackage{Name: pkg.Name, Summary: summary, HasSummary: summary.String() != ""}

		for _, exp := range pkg.SortedExports() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if !exp.Item.Kind.Valid() {
				return nil, derrors.UnknownKindError(pkg.Name, exp.Name, string(exp.Item.Kind))
			}

			path := naming.PagePath(exp.Name)
			owner := pkg.Name + ":" + exp.Name
			if prev, taken := owners[path]; taken {
				return nil, derrors.NameCollisionError(path, prev, owner)
			}
			owners[path] = owner

			body, err := t.execute("page", newPageView(pkg.Name, exp))
			if err != nil {
				return nil, derrors.Wrap(err, derrors.CategoryRender, "failed to render page").
					WithContext("package", pkg.Name).
					WithContext("export", exp.Name)
			}
			pages = append(pages, apimodel.RenderedPage{Path: path, Content: body})

			entry.Exports = append(entry.Exports, indexExport{
				Name:   exp.Name,
				Href:   path,
				Kind:   exp.Item.Kind,
				IsBeta: exp.Item.IsBeta,
			})
		}
		index.Packages = append(index.Packages, entry)
	}

	body, err := t.execute("index", index)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryRender, "failed to render index")
	}
	pages = append(pages, apimodel.RenderedPage{Path: naming.IndexPath, Content: body})
	return pages, nil
}

func newPageView(pkgName string, exp apimodel.NamedExport) pageView {
	item := exp.Item
	v := pageView{
		Name:       exp.Name,
		Package:    pkgName,
		Import:     fmt.Sprintf("import { %s } from %q", exp.Name, pkgName),
		Kind:       item.Kind,
		Keyword:    string(item.Kind),
		IsFunction: item.Kind == apimodel.KindFunction,
		IsBeta:     item.IsBeta,
		Signature:  item.Signature,
		Lead:       lead(string(item.Extends), string(item.Implements)),
	}
	if v.Signature == "" {
		v.Signature = exp.Name
	}

	members := item.SortedMembers()
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	anchors := naming.Anchors(names)
	for _, m := range members {
		sig := m.Item.Signature
		if sig == "" {
			sig = m.Name
		}
		anchor := anchors[m.Name]
		v.Members = append(v.Members, memberView{
			Name:      m.Name,
			Anchor:    legacyconversions.RiskilyAssumeIdentifier(anchor),
			Href:      "#" + anchor,
			Signature: sig,
			IsBeta:    m.Item.IsBeta,
		})
	}
	return v
}

func lead(extends, implements string) string {
	var parts []string
	if extends != "" {
		parts = append(parts, "extends: "+extends)
	}
	if implements != "" {
		parts = append(parts, "implements: "+implements)
	}
	return strings.Join(parts, " ")
}

// execute renders the named template and prefixes the front-matter block.
func (t *Theme) execute(name string, data any) ([]byte, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return nil, err
	}
	fields := map[string]any{"layout": t.opts.Layout}
	if t.opts.Fingerprint {
		fp, err := frontmatter.Fingerprint(fields, body.Bytes())
		if err != nil {
			return nil, err
		}
		fields[frontmatter.FingerprintField] = fp
	}
	return frontmatter.Build(fields, body.Bytes())
}
