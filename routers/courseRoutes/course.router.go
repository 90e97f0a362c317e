package courseRoutes

import (
	controllers "lyon/controllers/course"
	"lyon/middleware"
	adminValidators "lyon/validators/admin"
	validators "lyon/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing and details
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	// Lesson viewing (records progress for enrolled users)
	courseGroup.Get("/:course_id/lesson/:lesson_id", middleware.JWTMiddleware, validators.ViewLesson(), controllers.ViewLesson)

	// User enrollments
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, validators.GetUserEnrollments(), controllers.GetEnrollments)
}

// SetupAdminCourseRoutes sets up the admin data-entry routes for courses
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Post("/course", adminValidators.Course(), controllers.AdminCreateCourse)
	adminGroup.Put("/course/:id", adminValidators.IDParam("id", "courseID"), adminValidators.Course(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/course/:id", adminValidators.IDParam("id", "courseID"), controllers.AdminDeleteCourse)

	adminGroup.Post("/course/:id/lesson", adminValidators.IDParam("id", "courseID"), adminValidators.Lesson(), controllers.AdminCreateLesson)
	adminGroup.Put("/course/:course_id/lesson/:lesson_id",
		adminValidators.IDParam("course_id", "courseID"),
		adminValidators.IDParam("lesson_id", "lessonID"),
		adminValidators.Lesson(), controllers.AdminUpdateLesson)
	adminGroup.Delete("/course/:course_id/lesson/:lesson_id",
		adminValidators.IDParam("course_id", "courseID"),
		adminValidators.IDParam("lesson_id", "lessonID"),
		controllers.AdminDeleteLesson)

	adminGroup.Post("/category", adminValidators.Category(), controllers.AdminCreateCategory)
	adminGroup.Put("/category/:id", adminValidators.IDParam("id", "categoryID"), adminValidators.Category(), controllers.AdminUpdateCategory)
	adminGroup.Delete("/category/:id", adminValidators.IDParam("id", "categoryID"), controllers.AdminDeleteCategory)
}
