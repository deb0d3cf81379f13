package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hooksaurus/internal/admin"
	applog "hooksaurus/internal/log"
)

type AdminHandler struct {
	Engine *admin.Engine
}

// GET /admin
func (h *AdminHandler) Root(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "admin", fiber.Map{"Title": defaultTitle})
}

// GET /admin/tables
func (h *AdminHandler) Tables(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "table_list", fiber.Map{"Title": "Tables"})
}

// GET /admin/tables/:kind?page=&perPage=
func (h *AdminHandler) List(c *fiber.Ctx) error {
	p := admin.ParsePagination(c.Query("page"), c.Query("perPage"))
	l, err := h.Engine.List(requestContext(c), c.Params("kind"), p)
	if err != nil {
		return h.fail(c, "admin.table.list", err)
	}
	return renderListing(c, l)
}

// GET /admin/tables/:kind/insert
func (h *AdminHandler) InsertForm(c *fiber.Ctx) error {
	f, err := h.Engine.InsertForm(requestContext(c), c.Params("kind"))
	if err != nil {
		return h.fail(c, "admin.table.insert_form", err)
	}
	return renderForm(c, fiber.StatusOK, "New "+f.Kind.Label(), f)
}

// POST /admin/tables/:kind/insert
func (h *AdminHandler) Insert(c *fiber.Ctx) error {
	l, id, err := h.Engine.Insert(requestContext(c), c.Params("kind"), admin.Decoder(c.BodyParser))
	if err != nil {
		return h.fail(c, "admin.table.insert", err)
	}
	applog.Audit(c, "admin.table.insert", map[string]any{"kind": l.Kind.Slug(), "pk": id.String()})
	c.Set("HX-Push-Url", "/admin/tables/"+l.Kind.Slug())
	return renderListing(c, l)
}

// GET /admin/tables/:kind/:pk
func (h *AdminHandler) Detail(c *fiber.Ctx) error {
	d, err := h.Engine.Get(requestContext(c), c.Params("kind"), c.Params("pk"))
	if err != nil {
		return h.fail(c, "admin.table.detail", err)
	}
	return renderForm(c, fiber.StatusOK, d.Kind.Label()+" "+d.PK.String(), d.Form)
}

// PUT|POST /admin/tables/:kind/:pk
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	return h.fail(c, "admin.table.update", h.Engine.Update(requestContext(c), c.Params("kind"), c.Params("pk")))
}

// DELETE /admin/tables/:kind/:pk
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	return h.fail(c, "admin.table.delete", h.Engine.Delete(requestContext(c), c.Params("kind"), c.Params("pk")))
}

func renderListing(c *fiber.Ctx, l admin.Listing) error {
	return render(c, fiber.StatusOK, "table_list_records", fiber.Map{
		"Title":   l.Kind.Label() + " Records",
		"Listing": l,
	})
}

func renderForm(c *fiber.Ctx, status int, heading string, f *admin.Form) error {
	return render(c, status, "form", fiber.Map{
		"Title":   heading,
		"Heading": heading,
		"Form":    f,
	})
}

// fail turns an engine error into a response. Anything that is not an
// admin.Error goes to the app ErrorHandler.
func (h *AdminHandler) fail(c *fiber.Ctx, action string, err error) error {
	var ae *admin.Error
	if !errors.As(err, &ae) {
		return err
	}
	status := ae.Code.HTTPStatus()
	c.Status(status)
	fields := map[string]any{"kind": c.Params("kind"), "code": string(ae.Code)}

	switch ae.Code {
	case admin.CodeValidation:
		fields["fields"] = ae.Fields
		applog.Info(c, action+".invalid", fields)
		if ae.Form != nil {
			return renderForm(c, status, "New "+ae.Kind.Label(), ae.Form)
		}
	case admin.CodeStorage:
		applog.Error(c, action+".fail", ae.Cause, fields)
	default:
		applog.Info(c, action+".reject", fields)
	}
	return renderError(c, status, ae.Message)
}

func renderError(c *fiber.Ctx, status int, msg string) error {
	return render(c, status, "error", fiber.Map{
		"Title":   "Hooksaurus",
		"Heading": headingFor(status),
		"Status":  status,
		"Message": msg,
	})
}

func headingFor(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "Not found"
	case fiber.StatusNotImplemented:
		return "Not available yet"
	case fiber.StatusUnprocessableEntity:
		return "Check your input"
	case fiber.StatusForbidden:
		return "Forbidden"
	case fiber.StatusTooManyRequests:
		return "Slow down"
	default:
		return "Something went wrong"
	}
}
