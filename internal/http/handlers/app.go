package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"hooksaurus/internal/config"
	applog "hooksaurus/internal/log"
	"hooksaurus/internal/platform/datetime"
	"hooksaurus/web"
)

const (
	csrfCookie     = "csrf_"
	csrfContextKey = "csrf"
	csrfField      = "csrf"
	csrfHeader     = "X-CSRF-Token"

	// templateDir is read from disk instead of the embedded copy when
	// TEMPLATE_RELOAD is on.
	templateDir = "./web/templates"
)

// NewViews loads the template registry once.
func NewViews(reload bool) (*html.Engine, error) {
	var views *html.Engine
	if reload {
		views = html.New(templateDir, ".html")
		views.Reload(true)
	} else {
		views = html.NewFileSystem(http.FS(web.Templates()), ".html")
	}
	views.AddFunc("fmtTime", datetime.Format)
	if err := views.Load(); err != nil {
		return nil, err
	}
	return views, nil
}

// NewApp wires middleware and routes around deps.
func NewApp(cfg config.Config, deps *Deps) (*fiber.App, error) {
	views, err := NewViews(cfg.TemplateReload)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "hooksaurus",
		Views:                 views,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	var access io.Writer = os.Stdout
	if deps.AccessLog != nil {
		access = deps.AccessLog
	}

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: access,
	}))
	app.Use(helmet.New(helmet.Config{
		// uikit and htmx load from their CDNs
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, HX-Request, HX-Target, HX-Current-URL, " + csrfHeader,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/health")
		},
		LimitReached: func(c *fiber.Ctx) error {
			c.Status(fiber.StatusTooManyRequests)
			applog.Security(c, "rate.limit.hit", nil)
			return renderError(c, fiber.StatusTooManyRequests, "Too many requests. Please try again in a minute.")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:" + csrfField,
		CookieName:     csrfCookie,
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ContextKey:     csrfContextKey,
		Extractor: func(c *fiber.Ctx) (string, error) {
			// htmx sends the token as a header on PUT and DELETE
			if tok := c.Get(csrfHeader); tok != "" {
				return tok, nil
			}
			return csrf.CsrfFromForm(csrfField)(c)
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Status(fiber.StatusForbidden)
			applog.Security(c, "csrf.fail", map[string]any{"err": err.Error()})
			return renderError(c, fiber.StatusForbidden, "Security check failed. Please refresh and try again.")
		},
	}))

	// ---------- Static assets ----------
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: 3600,
	}))

	// ---------- Routes ----------
	base := deps.BaseHandler
	app.Get("/", base.Index)
	app.Get("/health", base.Health)
	app.Get("/healthz", base.Healthz)

	adm := deps.AdminHandler
	g := app.Group("/admin")
	g.Get("/", adm.Root)
	g.Get("/tables", adm.Tables)
	g.Get("/tables/:kind", adm.List)
	// registered before /:kind/:pk so "insert" is never read as a key
	g.Get("/tables/:kind/insert", adm.InsertForm)
	g.Post("/tables/:kind/insert", adm.Insert)
	g.Get("/tables/:kind/:pk", adm.Detail)
	g.Put("/tables/:kind/:pk", adm.Update)
	g.Post("/tables/:kind/:pk", adm.Update)
	g.Delete("/tables/:kind/:pk", adm.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return renderError(c, fiber.StatusNotFound, "Page not found")
	})
	return app, nil
}

// ErrorHandler logs and shows a friendly page. 5xx details never reach the
// response body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "Something went wrong. Please try again."
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		status, msg = fe.Code, fe.Message
	}
	c.Status(status)
	if status >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	} else {
		applog.Info(c, "server.reject", map[string]any{"err": err.Error()})
	}
	if rerr := renderError(c, status, msg); rerr != nil {
		return c.Status(status).SendString(msg)
	}
	return nil
}
