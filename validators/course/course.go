package courseValidator

import (
	"strconv"
	"strings"

	"lyon/middleware"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam validates that a route parameter is a positive integer ID
func parseIDParam(c *fiber.Ctx, param string) (int, bool) {
	raw := strings.TrimSpace(c.Params(param))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetCourseDetail validates the course ID route parameter
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// EnrollCourse validates the enroll route parameters
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// ViewLesson validates the course and lesson route parameters
func ViewLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		lessonID, ok := parseIDParam(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}
		c.Locals("courseID", courseID)
		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}

// CourseList validates the optional course list filters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Category *int   `query:"category"`
			Level    string `query:"level"`
			Search   string `query:"search"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Category != nil && *reqData.Category <= 0 {
			errors["category"] = "Category must be greater than 0!"
		}

		switch reqData.Level {
		case "", "beginner", "intermediate", "advanced":
		default:
			errors["level"] = "Level must be beginner, intermediate or advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// GetUserEnrollments validates pagination for the enrollment list
func GetUserEnrollments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		// Pagination is optional; when present both values must be sane
		if reqData.Page != nil || reqData.Limit != nil {
			errors := make(map[string]string)

			if reqData.Page == nil || *reqData.Page < 1 {
				errors["page"] = "Page must be greater than 0!"
			}
			if reqData.Limit == nil || *reqData.Limit < 1 {
				errors["limit"] = "Limit must be greater than 0!"
			}

			if len(errors) > 0 {
				return middleware.ValidationErrorResponse(c, errors)
			}

			c.Locals("validatedEnrollmentList", reqData)
		}
		return c.Next()
	}
}
