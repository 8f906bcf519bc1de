package entity

import (
	"regexp"
	"time"
)

// BirthDateLayout is the wire and storage format of customer birth dates.
const BirthDateLayout = "2006-01-02"

// MinimumCustomerAge is the youngest age accepted at registration.
const MinimumCustomerAge = 16

var (
	cpfPattern   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	phonePattern = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
)

// IsValidCPF reports whether cpf is formatted XXX.XXX.XXX-XX.
func IsValidCPF(cpf string) bool {
	return cpfPattern.MatchString(cpf)
}

// IsValidPhone reports whether phone is formatted (XX) XXXXX-XXXX or (XX) XXXX-XXXX.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Customer is a registered buyer.
type Customer struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	CPF          string    `json:"cpf"`   // Tax id, formatted XXX.XXX.XXX-XX.
	Phone        string    `json:"phone"` // (XX) XXXXX-XXXX or (XX) XXXX-XXXX.
	BirthDate    time.Time `json:"birthDate"`
	Address      string    `json:"address"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// CustomerUpdate carries the optional fields of a partial customer update.
type CustomerUpdate struct {
	Name      *string
	Email     *string
	CPF       *string
	Phone     *string
	BirthDate *time.Time
	Address   *string
}

// IsOldEnough reports whether a person born on birthDate has reached MinimumCustomerAge at now.
func IsOldEnough(birthDate, now time.Time) bool {
	threshold := now.AddDate(-MinimumCustomerAge, 0, 0)

	return !birthDate.After(threshold)
}
