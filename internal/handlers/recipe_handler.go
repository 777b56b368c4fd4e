package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seareny/tastebook/internal/auth"
	"github.com/seareny/tastebook/internal/services"
	"github.com/seareny/tastebook/internal/session"
	"github.com/seareny/tastebook/internal/storage"
)

type RecipeHandler struct {
	recipes  *services.RecipeService
	sessions *session.Manager
	images   *storage.ImageStore
}

func NewRecipeHandler(recipes *services.RecipeService, sessions *session.Manager, images *storage.ImageStore) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, sessions: sessions, images: images}
}

func (h *RecipeHandler) Home(c *fiber.Ctx) error {
	return h.listPage(c, "home")
}

func (h *RecipeHandler) Browse(c *fiber.Ctx) error {
	return h.listPage(c, "browse-recipes")
}

func (h *RecipeHandler) listPage(c *fiber.Ctx, page string) error {
	recipes, err := h.recipes.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render(page, viewData(c, h.sessions, fiber.Map{"Recipes": recipes}))
}

// Search runs the category/term filter. Selecting my_recipes without being
// logged in surfaces as Unauthorized rather than an unfiltered list.
func (h *RecipeHandler) Search(c *fiber.Ctx) error {
	recipes, err := h.recipes.Search(
		c.UserContext(),
		c.FormValue("category_select"),
		c.FormValue("ingredient_search"),
		h.sessions.Current(c),
	)
	if err != nil {
		return err
	}
	return c.Render("browse-recipes", viewData(c, h.sessions, fiber.Map{"Recipes": recipes}))
}

func (h *RecipeHandler) MyRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipes.ByOwner(c.UserContext(), c.Locals("user").(string))
	if err != nil {
		return err
	}
	return c.Render("browse-recipes", viewData(c, h.sessions, fiber.Map{"Recipes": recipes}))
}

func (h *RecipeHandler) View(c *fiber.Ctx) error {
	recipe, err := h.recipes.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Render("view-recipe", viewData(c, h.sessions, fiber.Map{"Recipe": recipe}))
}

func (h *RecipeHandler) CreatePage(c *fiber.Ctx) error {
	return c.Render("create-recipe", viewData(c, h.sessions, nil))
}

func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	doc, ok := parseRecipeDoc(c)
	if !ok {
		return c.Redirect("/create-recipe")
	}
	_, err := h.recipes.Create(c.UserContext(), doc, c.Locals("user").(string))
	if errors.Is(err, services.ErrInvalidCategory) {
		session.Flash(c, err.Error())
		return c.Redirect("/create-recipe")
	}
	if err != nil {
		return err
	}
	session.Flash(c, "Recipe successfully created")
	return c.Redirect("/create-recipe")
}

func (h *RecipeHandler) EditPage(c *fiber.Ctx) error {
	recipe, err := h.recipes.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	user := c.Locals("user").(string)
	if d := auth.RequireOwner(user, &recipe); !d.Allowed {
		return d.Err()
	}
	return c.Render("create-recipe", viewData(c, h.sessions, fiber.Map{"Recipe": recipe}))
}

func (h *RecipeHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	recipe, err := h.recipes.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	user := c.Locals("user").(string)
	if d := auth.RequireOwner(user, &recipe); !d.Allowed {
		return d.Err()
	}

	doc, ok := parseRecipeDoc(c)
	if !ok {
		return c.Redirect("/edit_recipe/" + id)
	}
	err = h.recipes.Update(c.UserContext(), id, doc, user)
	if errors.Is(err, services.ErrInvalidCategory) {
		session.Flash(c, err.Error())
		return c.Redirect("/edit_recipe/" + id)
	}
	if err != nil {
		return err
	}
	session.Flash(c, "Recipe successfully updated")
	return c.Redirect("/")
}

func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	recipe, err := h.recipes.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if d := auth.RequireOwner(c.Locals("user").(string), &recipe); !d.Allowed {
		return d.Err()
	}
	if err := h.recipes.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/")
}

// UploadImage stores a recipe image and returns the URL to put in the
// recipe's image field.
func (h *RecipeHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to retrieve image"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to open image"})
	}
	defer file.Close()

	url, err := h.images.Upload(c.UserContext(), fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), file, fileHeader.Size)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"url": url})
}

// parseRecipeDoc decodes the submitted recipe JSON. On garbage input it
// flashes and reports false so the caller can bounce back to the form.
func parseRecipeDoc(c *fiber.Ctx) (map[string]interface{}, bool) {
	doc := map[string]interface{}{}
	if err := json.Unmarshal(c.Body(), &doc); err != nil {
		session.Flash(c, "Could not read the submitted recipe")
		return nil, false
	}
	return doc, true
}
