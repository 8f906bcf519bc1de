package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:customers_email_key"`
	CPF          string    `gorm:"column:cpf;type:varchar(14);not null;uniqueIndex:customers_cpf_key"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	BirthDate    time.Time `gorm:"type:date;not null"`
	Address      string    `gorm:"type:text;not null"`
	RegisteredAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
