package validate

import (
	"theatre_api/model"
	"theatre_api/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateActor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.Actor

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("createActorInput", input)
		return c.Next()
	}
}

func CreateGenre() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.Genre

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("createGenreInput", input)
		return c.Next()
	}
}

func CreateTheatreHall() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTheatreHallInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("createTheatreHallInput", input)
		return c.Next()
	}
}
