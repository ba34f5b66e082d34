package utils

import "github.com/gofiber/fiber/v2"

// Success writes the standard response envelope with status "success".
func Success(c *fiber.Ctx, data any, message string, status ...int) error {
	code := fiber.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// Error writes the standard response envelope with status "error".
func Error(c *fiber.Ctx, data any, message string, status int) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data,
	})
}
