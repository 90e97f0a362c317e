package services

import (
	"errors"
	"fmt"
	"time"

	"lyon/models"
	courseModels "lyon/models/course"

	"gorm.io/gorm"
)

// Enroll binds a user to a course. The returned bool is true when the user
// was already enrolled, which callers treat as a successful idempotent
// outcome, not an error.
//
// Admission is evaluated in strict order: free admission (zero price or
// premium subscription), then credit admission (balance covers the price,
// debited exactly), otherwise InsufficientCreditsError with the shortfall.
// The balance debit and the enrollment insert commit as one transaction;
// the unique (user, course) index serializes concurrent attempts, and a
// lost race is resolved by re-reading the winner's row.
func Enroll(db *gorm.DB, user *models.User, crs *courseModels.Course) (*courseModels.Enrollment, bool, error) {
	var existing courseModels.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", user.ID, crs.ID).First(&existing).Error
	if err == nil {
		return &existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	enrollment, err := admitAndCreate(db, user, crs)
	if err == nil {
		return enrollment, false, nil
	}

	// Two near-simultaneous enroll attempts are a benign race: the unique
	// index rejects the loser, balance conflicts roll the whole debit back.
	// Re-evaluate once against fresh state instead of failing hard.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if rerr := db.Where("user_id = ? AND course_id = ?", user.ID, crs.ID).First(&existing).Error; rerr == nil {
			return &existing, true, nil
		}
		return nil, false, err
	}
	if errors.Is(err, ErrBalanceConflict) {
		if err := db.Where("id = ? AND is_deleted = false", user.ID).First(user).Error; err != nil {
			return nil, false, err
		}
		enrollment, err = admitAndCreate(db, user, crs)
		if err != nil {
			return nil, false, err
		}
		return enrollment, false, nil
	}
	return nil, false, err
}

// admitAndCreate runs one admission attempt as a single transaction.
func admitAndCreate(db *gorm.DB, user *models.User, crs *courseModels.Course) (*courseModels.Enrollment, error) {
	// Free admission needs no balance check at all.
	if !crs.IsFree() && !user.IsPremium() {
		if user.CreditBalance.LessThan(crs.Price) {
			return nil, NewInsufficientCreditsError(crs.Price, user.CreditBalance)
		}
	}

	enrollment := courseModels.Enrollment{
		UserID:     user.ID,
		CourseID:   crs.ID,
		Progress:   0,
		Completed:  false,
		EnrolledAt: time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if !crs.IsFree() && !user.IsPremium() {
			updated, err := applyBalanceChange(tx, user.ID, crs.Price.Neg(),
				models.CreditTypeEnrollment, "course", crs.ID,
				fmt.Sprintf("Enrollment in %s", crs.Title))
			if err != nil {
				return err
			}
			user.CreditBalance = updated.CreditBalance
		}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
