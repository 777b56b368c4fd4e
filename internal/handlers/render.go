package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seareny/tastebook/internal/models"
	"github.com/seareny/tastebook/internal/session"
)

// viewData decorates page data with what every template needs: the current
// identity for the nav, the pending flash message, and the category list.
func viewData(c *fiber.Ctx, sessions *session.Manager, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["User"] = sessions.Current(c)
	data["Flash"] = session.ConsumeFlash(c)
	data["Categories"] = models.FoodCategories
	return data
}
