package validate

import (
	"errors"
	"strconv"
	"theatre_api/constants"
	"theatre_api/model"
	"theatre_api/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePerformance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePerformanceInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("createPerformanceInput", input)
		return c.Next()
	}
}

func UpdatePerformance(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		performanceId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdatePerformanceInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		c.Locals("performanceId", performanceId)
		c.Locals("updatePerformanceInput", input)
		return c.Next()
	}
}
