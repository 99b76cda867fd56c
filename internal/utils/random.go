package utils

import (
	"fmt"
	"math/rand"

	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
)

var commonGivenNames = []string{
	"Juan", "Maria", "Jose", "Ana", "Angelo", "Grace", "Mark", "Joy",
	"Carlo", "Rosa", "Paolo", "Jenny", "Ramon", "Liza", "Dennis", "Cristina",
	"Allan", "Michelle", "Ryan", "Karen",
}

var commonSurnames = []string{
	"Santos", "Reyes", "Cruz", "Bautista", "Garcia", "Mendoza", "Torres",
	"Flores", "Ramos", "Gonzales", "Villanueva", "Dela Cruz", "Aquino",
	"Castillo", "Navarro", "Domingo", "Salazar", "Mercado", "Aguilar", "Rivera",
}

func GenerateRandomFullName() string {
	given := commonGivenNames[rand.Intn(len(commonGivenNames))]
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	return given + " " + surname
}

var digits = "0123456789"

// GenerateRandomPhoneNumber produces an 11-digit local mobile number.
func GenerateRandomPhoneNumber() string {
	number := "09"
	for i := 0; i < 9; i++ {
		number += string(digits[rand.Intn(len(digits))])
	}
	return number
}

func GenerateRandomStatus() domain.AppointmentStatus {
	statuses := []domain.AppointmentStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}
	return statuses[rand.Intn(len(statuses))]
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}
