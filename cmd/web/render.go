package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gpedrosad/mapra2/internal/observability"
)

// views holds parsed templates. Every file under pages/ becomes its own set
// cloned from the layout and partials; fragments execute from the shared set.
type views struct {
	dir string
	dev bool

	mu     sync.RWMutex
	shared *template.Template
	pages  map[string]*template.Template
}

func loadViews(dir string, dev bool) (*views, error) {
	v := &views{dir: dir, dev: dev}
	if err := v.parse(); err != nil {
		return nil, err
	}
	return v, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"now": time.Now,
		"add": func(a, b int) int { return a + b },
	}
}

func (v *views) parse() error {
	var shared, pages []string
	err := filepath.WalkDir(v.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) == "pages" {
			pages = append(pages, path)
		} else {
			shared = append(shared, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(shared) == 0 || len(pages) == 0 {
		return fmt.Errorf("no templates found under %s", v.dir)
	}
	base, err := template.New("_root").Funcs(funcMap()).ParseFiles(shared...)
	if err != nil {
		return err
	}
	set := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		clone, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := clone.ParseFiles(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		set[strings.TrimSuffix(filepath.Base(p), ".tmpl")] = clone
	}
	v.mu.Lock()
	v.shared, v.pages = base, set
	v.mu.Unlock()
	return nil
}

// lookup returns the page set (page != "") or the shared set. Dev mode
// reparses on every call.
func (v *views) lookup(page string) (*template.Template, error) {
	if v.dev {
		if err := v.parse(); err != nil {
			return nil, err
		}
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	if page == "" {
		return v.shared, nil
	}
	t, ok := v.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}
	return t, nil
}

// renderPage executes the base layout for page with status code.
func (v *views) renderPage(w http.ResponseWriter, r *http.Request, code int, page string, data any) {
	t, err := v.lookup(page)
	if err != nil {
		v.fail(w, r, "template parse error", err)
		return
	}
	v.execute(w, r, code, t, "base", data)
}

// renderFragment executes a named partial, for htmx swaps.
func (v *views) renderFragment(w http.ResponseWriter, r *http.Request, code int, name string, data any) {
	t, err := v.lookup("")
	if err != nil {
		v.fail(w, r, "template parse error", err)
		return
	}
	v.execute(w, r, code, t, name, data)
}

func (v *views) execute(w http.ResponseWriter, r *http.Request, code int, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		v.fail(w, r, "template exec error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

func (v *views) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	observability.FromContext(r.Context()).Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}
