package linkverify

import (
	"errors"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
)

// Broken is an internal link whose target does not exist.
type Broken struct {
	Page   string
	Target string
}

// Report summarizes one verification pass.
type Report struct {
	Pages   int
	Checked int
	Broken  []Broken
}

// Err returns nil when nothing is broken, otherwise every broken link
// joined into one error.
func (r Report) Err() error {
	if len(r.Broken) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Broken))
	for _, b := range r.Broken {
		errs = append(errs, derrors.BrokenLinkError(b.Page, b.Target))
	}
	return errors.Join(errs...)
}

// Verify checks every internal link of pages against the files under
// outDir. Fragments are checked against the ids of the target page when it
// is one of pages.
func Verify(outDir string, pages []apimodel.RenderedPage) (Report, error) {
	docs := make(map[string]*Document, len(pages))
	for _, p := range pages {
		doc, err := ParsePage(p.Content)
		if err != nil {
			return Report{}, derrors.Wrap(err, derrors.CategoryValidation, "invalid generated page").WithContext("page", p.Path)
		}
		docs[p.Path] = doc
	}

	report := Report{Pages: len(pages)}
	for _, p := range pages {
		for _, l := range docs[p.Path].Links {
			if !IsInternal(l.URL) {
				continue
			}
			report.Checked++
			if !resolves(outDir, p.Path, l.URL, docs) {
				report.Broken = append(report.Broken, Broken{Page: p.Path, Target: l.URL})
			}
		}
	}
	return report, nil
}

func resolves(outDir, from, link string, docs map[string]*Document) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}

	target := from
	if u.Path != "" {
		if strings.HasPrefix(u.Path, "/") {
			target = strings.TrimPrefix(path.Clean(u.Path), "/")
		} else {
			target = path.Join(path.Dir(from), u.Path)
		}
		if strings.HasSuffix(u.Path, "/") || target == "." {
			target = path.Join(target, "index.html")
		}
		if strings.HasPrefix(target, "../") {
			return false
		}
		info, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(target)))
		if err != nil || info.IsDir() {
			return false
		}
	}

	if u.Fragment == "" {
		return true
	}
	doc, ok := docs[target]
	if !ok {
		return true
	}
	_, ok = doc.IDs[u.Fragment]
	return ok
}
