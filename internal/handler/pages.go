package handler

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/nhdewitt/http-router/internal/headers"
	"github.com/nhdewitt/http-router/internal/request"
	"github.com/nhdewitt/http-router/internal/response"
	"github.com/nhdewitt/http-router/internal/router"
)

const (
	indexPage    = "index.html"
	healthPage   = "health.html"
	notFoundPage = "404.html"
)

var errOutsideRoot = errors.New("path escapes public root")

// Pages serves files from a public directory.
type Pages struct {
	root   string
	logger *zap.Logger
}

func NewPages(root string, logger *zap.Logger) *Pages {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pages{root: root, logger: logger}
}

// Load returns the content of name relative to the public root.
func (p *Pages) Load(name string) (string, bool) {
	full, err := p.resolve(name)
	if err != nil {
		p.logger.Warn("rejected static path", zap.String("name", name), zap.Error(err))
		return "", false
	}
	b, err := os.ReadFile(full)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			p.logger.Error("read static file failed", zap.String("file", full), zap.Error(err))
		}
		return "", false
	}
	return string(b), true
}

func (p *Pages) resolve(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errOutsideRoot
	}
	return filepath.Join(p.root, filepath.FromSlash(path.Clean("/"+name))), nil
}

// NotFound answers with the 404 page, or a bare "Not Found" body when the
// page itself is missing.
func (p *Pages) NotFound(*request.Request) *response.Response {
	body, ok := p.Load(notFoundPage)
	if !ok {
		body = "Not Found"
	}
	return response.New(response.StatusNotFound, nil, body)
}

// File returns a handler serving name, falling back to NotFound when the
// file cannot be loaded at request time.
func (p *Pages) File(name string) router.HandlerFunc {
	return func(req *request.Request) *response.Response {
		content, ok := p.Load(name)
		if !ok {
			return p.NotFound(req)
		}
		h := headers.NewHeaders()
		h.Set("Content-Type", contentType(name, content))
		return response.New(response.StatusOK, h, content)
	}
}

func contentType(name, content string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".css":
		return "text/css"
	case ".js":
		return "text/javascript"
	case ".html", ".htm":
		return "text/html"
	default:
		return mimetype.Detect([]byte(content)).String()
	}
}

// RegisterStatic binds GET "/" to the index page, GET "/health" to the
// health page, and GET "/<name>" for every other file under the public root.
func RegisterStatic(reg router.Registrar, p *Pages) error {
	if err := reg.Register(request.MethodGet, "/", p.File(indexPage)); err != nil {
		return err
	}
	if err := reg.Register(request.MethodGet, "/health", p.File(healthPage)); err != nil {
		return err
	}

	err := filepath.WalkDir(p.root, func(full string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(p.root, full)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if name == notFoundPage {
			return nil
		}
		return reg.Register(request.MethodGet, "/"+name, p.File(name))
	})
	if errors.Is(err, fs.ErrNotExist) {
		p.logger.Warn("public directory missing", zap.String("root", p.root))
		return nil
	}
	return err
}
