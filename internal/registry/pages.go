package registry

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/utils"
	"github.com/MKhiriev/go-crm-front/models"
)

const (
	pageExt       = ".html"
	partialPrefix = "_"
)

// PageData is passed to every page template.
type PageData struct {
	// Name is the registry name of the page (e.g. "ListEvents.php").
	Name string
	// RootPath is the URL prefix of the application, for building links.
	RootPath string
	// Site is the loaded site configuration.
	Site models.SiteConfig
	// Username is the authenticated user, if any.
	Username string
	// Query holds the request query parameters.
	Query url.Values
}

// LoadPages registers every page template found under dir. A missing dir
// registers nothing. It returns the number of pages registered.
func LoadPages(r *Registry, dir, suffix, rootPath string) (int, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading pages dir %q: %w", dir, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("pages path %q is not a directory", dir)
	}

	partials, err := filepath.Glob(filepath.Join(dir, partialPrefix+"*"+pageExt))
	if err != nil {
		return 0, fmt.Errorf("error listing partials: %w", err)
	}

	count := 0
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || filepath.Ext(p) != pageExt || strings.HasPrefix(d.Name(), partialPrefix) {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		name := PageName(filepath.ToSlash(rel), suffix)

		tmpl, err := template.New(d.Name()).ParseFiles(append([]string{p}, partials...)...)
		if err != nil {
			return fmt.Errorf("error parsing page %q: %w", p, err)
		}

		if err = r.Register(Entry{
			Name:    name,
			Kind:    KindPage,
			Source:  p,
			Handler: &pageHandler{name: name, rootPath: rootPath, tmpl: tmpl},
		}); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	return count, nil
}

// PageName derives the registry name of a page template from its path
// relative to the pages directory: the file stem is CamelCased and suffix
// is appended, the directory part is kept as is.
//
//	PageName("list-events.html", ".php")         // "ListEvents.php"
//	PageName("reports/DonorReport.html", ".php") // "reports/DonorReport.php"
func PageName(rel, suffix string) string {
	dir, file := path.Split(rel)
	stem := strings.TrimSuffix(file, path.Ext(file))
	return dir + utils.DashesToCamelCase(stem, true) + suffix
}

type pageHandler struct {
	name     string
	rootPath string
	tmpl     *template.Template
}

func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		Name:     h.name,
		RootPath: h.rootPath,
		Query:    r.URL.Query(),
	}
	data.Site, _ = utils.GetSiteConfigFromContext(r.Context())
	data.Username, _ = utils.GetUsernameFromContext(r.Context())

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", h.name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteHTML(w, http.StatusOK, &buf)
}
