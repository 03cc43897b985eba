package handler

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/slangstash/slang-service/internal/errors"
	"github.com/slangstash/slang-service/internal/middleware"
	"github.com/slangstash/slang-service/internal/slang/dto"
	"github.com/slangstash/slang-service/internal/slang/service"
	"github.com/slangstash/slang-service/internal/validation"
)

type SlangHandler struct {
	slangService *service.SlangService
}

func NewSlangHandler(slangService *service.SlangService) *SlangHandler {
	return &SlangHandler{slangService: slangService}
}

func (h *SlangHandler) Lookup(c *fiber.Ctx) error {
	requestedTerm := c.Query("requestedTerm")
	if requestedTerm == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "requestedTerm is required",
		})
	}

	out, err := h.slangService.Lookup(c.Context(), requestedTerm)
	if err != nil {
		if errors.Is(err, apperrors.ErrTermNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "slang term not found",
			})
		}
		log.Printf("slang lookup %q: %v", requestedTerm, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Internal server error.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *SlangHandler) Contribute(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "please login first",
		})
	}

	var input dto.ContributeInput
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

	id, err := h.slangService.Contribute(c.Context(), input, identity.ID, identity.Username, identity.Role)
	if err != nil {
		if errors.Is(err, apperrors.ErrTermAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": fmt.Sprintf("%s already exists", input.Term),
			})
		}
		log.Printf("slang contribute %q: %v", input.Term, err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"msg": "An error occurred while contributing the term.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg": fmt.Sprintf("The term %s has been successfully contributed with slang-ID %s.", input.Term, id),
	})
}
