package handler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/slangstash/slang-service/internal/errors"
	"github.com/slangstash/slang-service/internal/middleware"
	"github.com/slangstash/slang-service/internal/token"
	"github.com/slangstash/slang-service/internal/user/dto"
	"github.com/slangstash/slang-service/internal/user/service"
	"github.com/slangstash/slang-service/internal/validation"
	"github.com/slangstash/slang-service/pkg/constant"
)

type UserHandler struct {
	userService  *service.UserService
	tokenService token.Generator
}

func NewUserHandler(userService *service.UserService, tokenService token.Generator) *UserHandler {
	return &UserHandler{userService: userService, tokenService: tokenService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "invalid input",
		})
	}

	if msgs := validation.Struct(input); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": msgs,
		})
	}

	if err := h.userService.Register(c.Context(), input); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": "user with this email or username already exist",
			})
		case errors.Is(err, apperrors.ErrMailSend):
			log.Printf("register mail failure: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Wasn't able to send a verification mail. (server error)",
			})
		default:
			log.Printf("register: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Internal server error.",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":  "user created successfully",
		"mail": "verification mail sent (Valid only for 4 hours)",
	})
}

func (h *UserHandler) VerifyEmail(c *fiber.Ctx) error {
	tokenString := c.Query("token")

	username, err := h.userService.VerifyEmail(c.Context(), tokenString)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidToken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": "token invalid",
			})
		}
		log.Printf("verify email: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Internal server error.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg": fmt.Sprintf("email of %s is verified successfully", username),
	})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "invalid input",
		})
	}

	if msgs := validation.Struct(input); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": msgs,
		})
	}

	sessionToken, err := h.userService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "user not found with this email or username",
			})
		case errors.Is(err, apperrors.ErrInvalidCredential):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": "Invalid Credential",
			})
		case errors.Is(err, apperrors.ErrEmailNotVerified):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": "please verify your mail to proceed",
			})
		default:
			log.Printf("login: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Internal server error.",
			})
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    sessionToken,
		HTTPOnly: true,
		Expires:  time.Now().Add(h.tokenService.SessionExpiry()),
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg": "logged in successfully",
	})
}

func (h *UserHandler) ResetRequest(c *fiber.Ctx) error {
	var input dto.ResetRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "invalid input",
		})
	}

	if msgs := validation.Struct(input); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": msgs,
		})
	}

	if err := h.userService.ResetRequest(c.Context(), input.Email); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "user with this email does not exist",
			})
		case errors.Is(err, apperrors.ErrEmailNotVerified):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": "email not verified",
			})
		case errors.Is(err, apperrors.ErrMailSend):
			log.Printf("reset request mail failure: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Error sending reset email",
			})
		default:
			log.Printf("reset request: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Internal server error.",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg": "Reset email sent successfully (Valid only for 4 hours)",
	})
}

func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	tokenString := c.Query("token")

	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "invalid input",
		})
	}

	if msgs := validation.Struct(input); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": msgs,
		})
	}

	if err := h.userService.ResetPassword(c.Context(), tokenString, input.NewPassword); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidToken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": "invalid or expired token",
			})
		case errors.Is(err, apperrors.ErrUserNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": "user with this mail id doesn't exist",
			})
		default:
			log.Printf("reset password: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Internal server error.",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg": "password reset successfully",
	})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "please login first",
		})
	}

	var input dto.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "invalid input",
		})
	}

	if msgs := validation.Struct(input); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": msgs,
		})
	}

	if err := h.userService.Update(c.Context(), identity.Username, input); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSameUsername):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "username cannot be same.",
			})
		case errors.Is(err, apperrors.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "user not found with this username",
			})
		default:
			log.Printf("update user %s: %v", identity.Username, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Internal server error.",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg": "updated",
	})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var input dto.DeleteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "invalid input",
		})
	}

	if msgs := validation.Struct(input); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": msgs,
		})
	}

	username, err := h.userService.Delete(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "no user with this email exist",
			})
		case errors.Is(err, apperrors.ErrInvalidCredential):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": "Invalid Credential",
			})
		default:
			log.Printf("delete user: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Internal server error.",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg": fmt.Sprintf("%s deleted successfully", username),
	})
}

// List is the deprecated user listing endpoint.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		log.Printf("list users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Internal server error.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": users,
	})
}
