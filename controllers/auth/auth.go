package authController

import (
	"errors"
	"log"
	"time"

	"lyon/config"
	"lyon/database"
	"lyon/middleware"
	"lyon/models"
	"lyon/services"
	"lyon/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		Mobile       string `json:"mobile"`
		Password     string `json:"password"`
		ReferralCode string `json:"referralCode"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Referral codes are generated once here and never change
	referralCode, err := utils.GenerateUniqueReferralCode(db, reqData.Name)
	if err != nil {
		log.Printf("Error generating referral code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	newUser := models.User{
		Name:         reqData.Name,
		Email:        reqData.Email,
		Mobile:       reqData.Mobile,
		Password:     string(hashedPassword),
		ReferralCode: referralCode,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	// Apply the referral bonus. An invalid code is only a warning: the
	// account is already created and signup must not fail because of it.
	warning := ""
	referral, err := services.ApplyReferral(db, &newUser, reqData.ReferralCode)
	if err != nil {
		if errors.Is(err, services.ErrInvalidReferralCode) {
			warning = "Invalid referral code. Account created without referral bonus."
		} else {
			log.Printf("Error applying referral for user %d: %v", newUser.ID, err)
			warning = "Referral bonus could not be applied."
		}
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Name, newUser.Role, newUser.Email, string(newUser.SubscriptionTier))
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	// Clean Response
	newUser.Password = ""

	data := fiber.Map{
		"user":  newUser,
		"token": token,
	}
	if referral != nil {
		data["referralBonus"] = config.AppConfig.ReferredBonus
	}
	if warning != "" {
		data["warning"] = warning
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", data)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	now := time.Now()
	user.LastLogin = &now
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating last login for user %d: %v", user.ID, err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email, string(user.SubscriptionTier))
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":  user,
		"token": token,
	})
}
