// Package docs builds the OpenAPI document served at /api-docs from the registered routes.
package docs

import (
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const bearerScheme = "bearerAuth"

// Route describes one documented endpoint.
type Route struct {
	Method  string
	Path    string
	Summary string
	Tag     string
	Secured bool
	// Status is the documented success code; 0 means 200.
	Status int
}

type Info struct {
	Title       string
	Version     string
	Description string
}

// Registry collects routes as they are mounted.
type Registry struct {
	mu     sync.Mutex
	routes []Route
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Add(route Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func (r *Registry) Routes() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Build renders routes as an OpenAPI 3.0 document.
func Build(info Info, serverURL string, routes []Route) *openapi3.T {
	components := openapi3.NewComponents()
	components.SecuritySchemes = openapi3.SecuritySchemes{
		bearerScheme: &openapi3.SecuritySchemeRef{Value: openapi3.NewJWTSecurityScheme()},
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Paths:      openapi3.NewPaths(),
		Components: &components,
	}
	if serverURL != "" {
		doc.Servers = openapi3.Servers{&openapi3.Server{URL: serverURL}}
	}

	for _, rt := range routes {
		path, params := convertPath(rt.Path)

		item := doc.Paths.Value(path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(path, item)
		}
		item.SetOperation(strings.ToUpper(rt.Method), newOperation(rt, params))
	}
	return doc
}

func newOperation(rt Route, params []*openapi3.Parameter) *openapi3.Operation {
	status := rt.Status
	if status == 0 {
		status = fiber.StatusOK
	}

	op := openapi3.NewOperation()
	op.Summary = rt.Summary
	op.OperationID = operationID(strings.ToLower(rt.Method), rt.Path)
	if rt.Tag != "" {
		op.Tags = []string{rt.Tag}
	}
	for _, p := range params {
		op.AddParameter(p)
	}

	op.Responses = openapi3.NewResponsesWithCapacity(2)
	op.AddResponse(status, openapi3.NewResponse().WithDescription(utils.StatusMessage(status)))
	if rt.Secured {
		op.Security = openapi3.NewSecurityRequirements().
			With(openapi3.NewSecurityRequirement().Authenticate(bearerScheme))
		op.AddResponse(fiber.StatusUnauthorized, openapi3.NewResponse().WithDescription("Unauthorized"))
	}
	return op
}

// convertPath rewrites Fiber ":param" segments as OpenAPI "{param}" and lists them.
func convertPath(path string) (string, []*openapi3.Parameter) {
	segments := strings.Split(path, "/")
	var params []*openapi3.Parameter
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			name := strings.TrimSuffix(seg[1:], "?")
			segments[i] = "{" + name + "}"
			params = append(params, openapi3.NewPathParameter(name).WithSchema(openapi3.NewIntegerSchema()))
		}
	}
	return strings.Join(segments, "/"), params
}

func operationID(method, path string) string {
	parts := []string{method}
	for _, seg := range strings.Split(path, "/") {
		seg = strings.TrimPrefix(seg, ":")
		if seg == "" || seg == "api" {
			continue
		}
		parts = append(parts, seg)
	}
	return strings.Join(parts, "_")
}

// Handler serves the document built from reg at request time.
func Handler(info Info, serverURL string, reg *Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		routes := reg.Routes()
		sort.SliceStable(routes, func(i, j int) bool { return routes[i].Path < routes[j].Path })
		return c.JSON(Build(info, serverURL, routes))
	}
}
