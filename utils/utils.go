package utils

import (
	"fmt"
	"strings"

	"lyon/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateUniqueReferralCode builds a referral code from the user's name and
// keeps appending a counter until it is unique. Names that produce an empty
// base fall back to a random code.
func GenerateUniqueReferralCode(db *gorm.DB, name string) (string, error) {
	base := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	if len(base) > 8 {
		base = base[:8]
	}
	if base == "" {
		base = uuid.NewString()[:8]
	}

	code := base
	counter := 1
	for {
		var user models.User
		err := db.Where("referral_code = ?", code).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			return code, nil
		}
		if err != nil {
			return "", err
		}
		code = fmt.Sprintf("%s%d", base, counter)
		counter++
	}
}
