package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerInput struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	CPF       string `json:"cpf" validate:"required,cpf"`
	Phone     string `json:"phone" validate:"required,phone_br"`
	BirthDate string `json:"birthDate" validate:"required,date_ymd"`
}

type itemInput struct {
	ProductID int64 `json:"productId" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"gt=0"`
}

type orderInput struct {
	Status string      `json:"status" validate:"omitempty,order_status"`
	Items  []itemInput `json:"items" validate:"required,min=1,dive"`
}

type productInput struct {
	Category string `json:"category" validate:"required,category"`
}

func TestValidate_CustomTags(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		wantErr bool
	}{
		{"valid customer", customerInput{Name: "Maria", CPF: "123.456.789-00", Phone: "(11) 99999-9999", BirthDate: "1990-05-15"}, false},
		{"landline phone", customerInput{Name: "Maria", CPF: "123.456.789-00", Phone: "(11) 3333-4444", BirthDate: "1990-05-15"}, false},
		{"cpf without mask", customerInput{Name: "Maria", CPF: "12345678900", Phone: "(11) 99999-9999", BirthDate: "1990-05-15"}, true},
		{"phone without area code", customerInput{Name: "Maria", CPF: "123.456.789-00", Phone: "99999-9999", BirthDate: "1990-05-15"}, true},
		{"invalid date", customerInput{Name: "Maria", CPF: "123.456.789-00", Phone: "(11) 99999-9999", BirthDate: "15/05/1990"}, true},
		{"valid category", productInput{Category: "Skincare"}, false},
		{"unknown category", productInput{Category: "Eletrônicos"}, true},
		{"valid status", orderInput{Status: "enviado", Items: []itemInput{{ProductID: 1, Quantity: 1}}}, false},
		{"unknown status", orderInput{Status: "perdido", Items: []itemInput{{ProductID: 1, Quantity: 1}}}, true},
		{"empty items", orderInput{}, true},
		{"zero quantity", orderInput{Items: []itemInput{{ProductID: 1, Quantity: 0}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := New()

	err := v.Validate(orderInput{Items: []itemInput{{ProductID: 1, Quantity: 0}}})
	require.Error(t, err)

	fields := FormatValidationError(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "items[0].quantity", fields[0].Field)
	assert.Equal(t, "quantity deve ser maior que 0", fields[0].Message)

	err = v.Validate(customerInput{Name: "M", CPF: "1", Phone: "(11) 99999-9999", BirthDate: "1990-05-15"})
	fields = FormatValidationError(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "name deve ter no mínimo 2 caracteres", fields[0].Message)
	assert.Equal(t, "CPF deve estar no formato XXX.XXX.XXX-XX", fields[1].Message)
}

func TestFormatValidationError_OtherError(t *testing.T) {
	assert.Nil(t, FormatValidationError(errors.New("boom")))
}
