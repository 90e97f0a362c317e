package adminValidator

import (
	"time"

	"lyon/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// RecommendationRequest is the admin payload for stock recommendations
type RecommendationRequest struct {
	Symbol       string          `json:"symbol" validate:"required,min=1,max=10"`
	CompanyName  string          `json:"companyName" validate:"required,max=200"`
	Action       string          `json:"action" validate:"required,oneof=buy hold sell"`
	TargetPrice  decimal.Decimal `json:"targetPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	Analysis     string          `json:"analysis" validate:"required"`
	RiskLevel    string          `json:"riskLevel" validate:"required,oneof=low medium high"`
	ExpiresAt    time.Time       `json:"expiresAt" validate:"required"`
	IsActive     *bool           `json:"isActive"`
}

// NewsRequest is the admin payload for news articles
type NewsRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=300"`
	Content     string    `json:"content" validate:"required"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source" validate:"required,max=100"`
	PublishedAt time.Time `json:"publishedAt" validate:"required"`
	ImageURL    string    `json:"imageUrl" validate:"omitempty,url"`
	Tags        string    `json:"tags" validate:"max=200"`
	IsActive    *bool     `json:"isActive"`
}

// Recommendation validates the admin stock recommendation payload
func Recommendation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RecommendationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		errors := make(map[string]string)
		if reqData.TargetPrice.IsNegative() || reqData.TargetPrice.IsZero() {
			errors["targetPrice"] = "Target price must be positive!"
		}
		if reqData.CurrentPrice.IsNegative() || reqData.CurrentPrice.IsZero() {
			errors["currentPrice"] = "Current price must be positive!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRecommendation", reqData)
		return c.Next()
	}
}

// News validates the admin news article payload
func News() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(NewsRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedNews", reqData)
		return c.Next()
	}
}
