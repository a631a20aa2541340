// Package handlers holds the view handlers: each one is bound to a route,
// reads the request context and answers with a status line and a rendered
// body. Persistence goes through the mappers, business logic through the
// engine; handlers never touch the transport.
package handlers

import (
	"gowebshop/config/values"
	"gowebshop/internal/shop/business/engine"
	"gowebshop/internal/shop/business/models"
	"gowebshop/internal/shop/framework"
	"gowebshop/metrics"
	"gowebshop/pkg/logger"
	"gowebshop/pkg/templator"
)

// Session is the explicit current-user slot carried in the request context.
type Session struct {
	User *models.User
}

// SessionUser extracts the session user, or nil for an anonymous request.
func SessionUser(r *framework.Request) *models.User {
	session, ok := r.Session.(*Session)
	if !ok || session == nil {
		return nil
	}
	return session.User
}

// View is the plumbing shared by every handler.
type View struct {
	Eng          *engine.Engine
	Renderer     templator.Renderer
	TemplatesDir string
	Log          logger.Logger
	Values       values.ShopValues
	Metrics      *metrics.ShopMetrics
}

// context seeds the template context with what every page shows.
func (v View) context(r *framework.Request, title string) map[string]interface{} {
	return map[string]interface{}{
		"title": title,
		"year":  r.Values["year"],
		"path":  r.Values["path"],
	}
}

// page renders the named template; a broken template is a server error, not
// a crash.
func (v View) page(name string, ctx map[string]interface{}) (string, string) {
	body, err := v.Renderer.Render(name, v.TemplatesDir, ctx)
	if err != nil {
		v.Log.Log("failed to render %s: %v", name, err)
		return "500 Internal Server Error", "<h1>Internal server error</h1>"
	}
	return "200 OK", body
}

func (v View) badRequest(message string) (string, string) {
	return "400 Bad Request", "<h1>Bad request</h1><p>" + message + "</p>"
}

func (v View) notFound(message string) (string, string) {
	return "404 Not Found", "<h1>Not found</h1><p>" + message + "</p>"
}
