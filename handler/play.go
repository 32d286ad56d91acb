package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"theatre_api/constants"
	"theatre_api/database"
	"theatre_api/helper"
	"theatre_api/model"
	"theatre_api/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllPlays(c *fiber.Ctx) error {
	var input model.FilterPlayInput
	if err := c.QueryParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters", err)
	}

	genreIds, err := utils.ParseIdList(input.Genres)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err, "genres")
	}
	actorIds, err := utils.ParseIdList(input.Actors)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err, "actors")
	}

	plays, totalCount, err := helper.FilterPlays(database.DB, input.Title, genreIds, actorIds, input.Limit, input.Page)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]model.PlayListResponse, 0, len(plays))
	for _, play := range plays {
		rows = append(rows, helper.PlayToListResponse(play))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

func GetPlayById(c *fiber.Ctx) error {
	playId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var play model.Play
	err := database.DB.Preload("Actors").Preload("Genres").First(&play, playId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, play)
}

func CreatePlay(c *fiber.Ctx) error {
	if err := requireStaff(c); err != nil {
		return err
	}

	input, ok := c.Locals("createPlayInput").(model.CreatePlayInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var actors []model.Actor
	if len(input.ActorIds) > 0 {
		if err := db.Find(&actors, input.ActorIds).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if len(actors) != len(input.ActorIds) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "One or more actors do not exist", errors.New("unknown actor id"), "actorIds")
		}
	}

	var genres []model.Genre
	if len(input.GenreIds) > 0 {
		if err := db.Find(&genres, input.GenreIds).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if len(genres) != len(input.GenreIds) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "One or more genres do not exist", errors.New("unknown genre id"), "genreIds")
		}
	}

	play := model.Play{
		Title:       input.Title,
		Description: input.Description,
		Actors:      actors,
		Genres:      genres,
	}
	if err := db.Create(&play).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create play", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, play)
}

func UploadPlayImage(c *fiber.Ctx) error {
	if err := requireStaff(c); err != nil {
		return err
	}

	playId, ok := c.Locals("playId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	fileHeader, ok := c.Locals("imageFile").(*multipart.FileHeader)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var play model.Play
	if err := db.First(&play, playId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not read uploaded file", err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()
	publicId := helper.PlayImagePublicId(play.Title)
	uploadResult, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		PublicID: publicId,
		Folder:   "plays",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	// Replacing the image drops the previous asset.
	if play.ImagePublicId != nil {
		_, _ = cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: *play.ImagePublicId})
	}

	play.ImageUrl = utils.StringPtr(uploadResult.SecureURL)
	play.ImagePublicId = utils.StringPtr(uploadResult.PublicID)
	if err := db.Save(&play).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not save image url", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":       play.ID,
		"imageUrl": play.ImageUrl,
	})
}
