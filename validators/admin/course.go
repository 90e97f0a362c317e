package adminValidator

import (
	"lyon/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// CourseRequest is the admin payload for creating or updating a course
type CourseRequest struct {
	Title         string          `json:"title" validate:"required,min=3,max=200"`
	Description   string          `json:"description" validate:"required"`
	Instructor    string          `json:"instructor" validate:"max=200"`
	CategoryID    *uint           `json:"categoryId"`
	Level         string          `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Price         decimal.Decimal `json:"price"`
	DurationHours uint            `json:"durationHours"`
	ThumbnailURL  string          `json:"thumbnailUrl" validate:"omitempty,url"`
	IsActive      *bool           `json:"isActive"`
}

// LessonRequest is the admin payload for creating or updating a lesson
type LessonRequest struct {
	Title           string `json:"title" validate:"required,min=3,max=200"`
	ContentType     string `json:"contentType" validate:"required,oneof=video image pdf text quiz"`
	Description     string `json:"description"`
	VideoURL        string `json:"videoUrl" validate:"omitempty,url"`
	ImageURL        string `json:"imageUrl" validate:"omitempty,url"`
	PDFURL          string `json:"pdfUrl" validate:"omitempty,url"`
	TextContent     string `json:"textContent"`
	DurationMinutes uint   `json:"durationMinutes"`
	Order           uint   `json:"order" validate:"required,min=1"`
	IsPreview       bool   `json:"isPreview"`
}

// CategoryRequest is the admin payload for creating a course category
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=50"`
}

// validationErrors flattens validator.ValidationErrors to the field error map
// the response envelope expects.
func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[fe.Field()] = "Failed validation: " + fe.Tag()
		}
	} else {
		errors["request"] = err.Error()
	}
	return errors
}

// Course validates the admin course create/update payload
func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}
		if reqData.Price.IsNegative() {
			return middleware.ValidationErrorResponse(c, map[string]string{"price": "Price cannot be negative!"})
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// Lesson validates the admin lesson create/update payload
func Lesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// Category validates the admin category payload
func Category() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}
