package handler

import (
	"errors"
	"theatre_api/constants"
	"theatre_api/database"
	"theatre_api/helper"
	"theatre_api/model"
	"theatre_api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func requireStaff(c *fiber.Ctx) error {
	_, user, isStaff := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.AUTHENTICATION_REQUIRED, errors.New("user not found"))
	}
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("staff only"))
	}
	return nil
}

func GetAllActors(c *fiber.Ctx) error {
	var actors []model.Actor
	if err := database.DB.Order("last_name ASC, first_name ASC").Find(&actors).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]model.ActorResponse, 0, len(actors))
	for _, actor := range actors {
		rows = append(rows, model.ActorResponse{
			ID:        actor.ID,
			FirstName: actor.FirstName,
			LastName:  actor.LastName,
			FullName:  actor.FullName(),
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

func CreateActor(c *fiber.Ctx) error {
	if err := requireStaff(c); err != nil {
		return err
	}

	input, ok := c.Locals("createActorInput").(model.Actor)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	actor := model.Actor{FirstName: input.FirstName, LastName: input.LastName}
	if err := database.DB.Create(&actor).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create actor", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, actor)
}

func GetAllGenres(c *fiber.Ctx) error {
	var genres []model.Genre
	if err := database.DB.Order("name ASC").Find(&genres).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, genres)
}

func CreateGenre(c *fiber.Ctx) error {
	if err := requireStaff(c); err != nil {
		return err
	}

	input, ok := c.Locals("createGenreInput").(model.Genre)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	genre := model.Genre{Name: input.Name}
	if err := database.DB.Create(&genre).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create genre", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, genre)
}

func GetAllTheatreHalls(c *fiber.Ctx) error {
	var halls []model.TheatreHall
	if err := database.DB.Order("name ASC").Find(&halls).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]model.TheatreHallResponse, 0, len(halls))
	for _, hall := range halls {
		rows = append(rows, hall.ToResponse())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

func CreateTheatreHall(c *fiber.Ctx) error {
	if err := requireStaff(c); err != nil {
		return err
	}

	input, ok := c.Locals("createTheatreHallInput").(model.CreateTheatreHallInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var hall model.TheatreHall
	if err := copier.Copy(&hall, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Create(&hall).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create theatre hall", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, hall.ToResponse())
}
