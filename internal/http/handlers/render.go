package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"hooksaurus/internal/admin"
	applog "hooksaurus/internal/log"
)

const (
	partialHeader = "HX-Request"
	mainLayout    = "layouts/main"
	defaultTitle  = "Hooksaurus Auctions: Helping Animal Sanctuaries"
)

// isPartial reports whether the caller asked for an in-page fragment.
func isPartial(c *fiber.Ctx) bool {
	return c.Get(partialHeader) != ""
}

// render picks fragments/<view> alone for partial requests and the same
// fragment inside the main layout otherwise. Both get the same data.
func render(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = defaultTitle
	}
	data["Kinds"] = admin.Kinds()

	tok := csrfToken(c)
	data["CSRFToken"] = tok
	if f, ok := data["Form"].(*admin.Form); ok && f != nil {
		f.CSRFToken = tok
	}

	c.Vary(partialHeader)
	c.Status(status)
	if isPartial(c) {
		return c.Render("fragments/"+view, data)
	}
	return c.Render("fragments/"+view, data, mainLayout)
}

// csrfToken reads the token the csrf middleware stored, falling back to the
// cookie when Locals is empty.
func csrfToken(c *fiber.Ctx) string {
	if tok, ok := c.Locals(csrfContextKey).(string); ok && tok != "" {
		return tok
	}
	return c.Cookies(csrfCookie)
}

// requestContext carries the request id into the engine's logs.
func requestContext(c *fiber.Ctx) context.Context {
	rid, _ := c.Locals("requestid").(string)
	return applog.WithRequestID(c.UserContext(), rid)
}
