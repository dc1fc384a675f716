package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/dto"
	"github.com/zarbiti/zarbiti-backend/internal/models"
)

// AdminRequired admits only admin accounts: the role claim is checked
// first, then the current DB row in case the role changed since the token
// was issued.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == string(directory.RoleAdmin) {
			return c.Next()
		}

		userID, err := GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil {
			if user.Role == string(directory.RoleAdmin) {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}
