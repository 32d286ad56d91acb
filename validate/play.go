package validate

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"theatre_api/constants"
	"theatre_api/model"
	"theatre_api/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePlay() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePlayInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("createPlayInput", input)
		return c.Next()
	}
}

func UploadPlayImage(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		playId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		file, err := c.FormFile("image")
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Image file is required", err, "image")
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unsupported file format (PNG, JPG, JPEG only)", errors.New("invalid file format"), "image")
		}

		c.Locals("playId", playId)
		c.Locals("imageFile", file)
		return c.Next()
	}
}
