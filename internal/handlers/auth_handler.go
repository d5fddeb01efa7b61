package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ecomm-api/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"result": "Invalid request body"})
	}

	user, token, err := h.Auth.Register(c.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"result": "Please fill out all mandatory fields"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"result": "Registration Failed", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"user": user, "auth": token})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"result": "Invalid request body"})
	}

	user, token, err := h.Auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRequest):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"result": "Please fill out all mandatory fields"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"result": "No User Found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"user": user, "auth": token})
}
