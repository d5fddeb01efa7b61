package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"ecomm-api/internal/repository"
	"ecomm-api/internal/services"
	"ecomm-api/internal/storage"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Images  storage.Storage
}

// Add creates a product from a multipart form. The userId form field is
// optional and defaults to the authenticated user.
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	in := services.ProductInput{
		Product:  c.FormValue("product"),
		Price:    c.FormValue("price"),
		Category: c.FormValue("category"),
		Company:  c.FormValue("company"),
		UserID:   c.FormValue("userId"),
	}
	if in.UserID == "" {
		in.UserID, _ = c.Locals("user_id").(string)
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return internalError(c, err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return internalError(c, err)
		}

		stored, err := h.Images.Save(c.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
		if err != nil {
			return internalError(c, err)
		}
		in.Image = stored
	}

	product, err := h.Catalog.Create(c.Context(), in)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	requesterID, _ := c.Locals("user_id").(string)
	isAdmin, _ := c.Locals("is_admin").(bool)

	products, err := h.Catalog.List(c.Context(), requesterID, isAdmin)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(products)
}

// Get responds 200 with a sentinel body when no record matches, which is
// what the existing frontend expects instead of a 404.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product, err := h.Catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return c.JSON(fiber.Map{"result": "No Record Found"})
		}
		return internalError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"result": "Invalid request body"})
	}

	outcome, err := h.Catalog.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(outcome)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	outcome, err := h.Catalog.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(outcome)
}

func (h *ProductHandler) Search(c *fiber.Ctx) error {
	products, err := h.Catalog.Search(c.Context(), c.Params("key"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(products)
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"message": err.Error(),
	})
}
