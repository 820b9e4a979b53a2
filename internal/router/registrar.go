package router

import (
	"go-inventory-rfid/internal/docs"

	"github.com/gofiber/fiber/v2"
)

// registrar mounts routes on a Fiber router and records each one for the API document.
type registrar struct {
	router    fiber.Router
	prefix    string
	tag       string
	isSecured bool
	status    int
	registry  *docs.Registry
}

func newRegistrar(r fiber.Router, prefix, tag string, registry *docs.Registry) *registrar {
	return &registrar{router: r, prefix: prefix, tag: tag, registry: registry}
}

// secured returns a copy whose routes are documented as requiring a bearer token.
func (r *registrar) secured() *registrar {
	cp := *r
	cp.isSecured = true
	return &cp
}

// withStatus returns a copy that documents the next routes with the given success code.
func (r *registrar) withStatus(status int) *registrar {
	cp := *r
	cp.status = status
	return &cp
}

func (r *registrar) add(method, path, summary string, handlers ...fiber.Handler) {
	r.router.Add(method, path, handlers...)
	r.registry.Add(docs.Route{
		Method:  method,
		Path:    r.prefix + path,
		Summary: summary,
		Tag:     r.tag,
		Secured: r.isSecured,
		Status:  r.status,
	})
}

func (r *registrar) get(path, summary string, handlers ...fiber.Handler) {
	r.add(fiber.MethodGet, path, summary, handlers...)
}

func (r *registrar) post(path, summary string, handlers ...fiber.Handler) {
	r.add(fiber.MethodPost, path, summary, handlers...)
}

func (r *registrar) put(path, summary string, handlers ...fiber.Handler) {
	r.add(fiber.MethodPut, path, summary, handlers...)
}

func (r *registrar) delete(path, summary string, handlers ...fiber.Handler) {
	r.add(fiber.MethodDelete, path, summary, handlers...)
}
