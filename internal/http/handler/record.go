package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"filedepot/internal/service"
)

type recordRequest struct {
	Name string `json:"name"`
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// ListRecords handles GET /: typed dump of the demonstration table.
func ListRecords(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			logError(c, "list_records", err)
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"records": items})
	}
}

// ReadRecord handles GET /read/:id.
func ReadRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id")
		}

		rec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "record not found")
			}
			logError(c, "read_record", err)
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(rec)
	}
}

// CreateRecord handles POST /create with JSON body {"name": ...}.
func CreateRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req recordRequest
		if err := c.BodyParser(&req); err != nil || req.Name == "" {
			return writeError(c, fiber.StatusBadRequest, "the 'name' field is required")
		}

		id, err := svc.Create(c.UserContext(), req.Name)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "the 'name' field is required")
			}
			logError(c, "create_record", err)
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "record created",
			"id":      id,
		})
	}
}

// UpdateRecord handles PUT /update/:id with JSON body {"name": ...}.
// Updating a missing id reports success: rows affected is not checked.
func UpdateRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id")
		}

		var req recordRequest
		if err := c.BodyParser(&req); err != nil || req.Name == "" {
			return writeError(c, fiber.StatusBadRequest, "the 'name' field is required")
		}

		if err := svc.Update(c.UserContext(), id, req.Name); err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "the 'name' field is required")
			}
			logError(c, "update_record", err)
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"message": "record updated"})
	}
}

// DeleteRecord handles DELETE /delete_record/:id. Deleting a missing id
// reports success.
func DeleteRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id")
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			logError(c, "delete_record", err)
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"message": "record deleted"})
	}
}
