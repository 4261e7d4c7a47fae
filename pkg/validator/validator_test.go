package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type phoneField struct {
	Phone string `validate:"brphone"`
}

type cpfField struct {
	CPF string `validate:"cpf"`
}

type notesField struct {
	Notes string `validate:"maxwords=10"`
}

type timeField struct {
	Time string `validate:"hhmm"`
}

func TestBRPhone(t *testing.T) {
	v := NewValidator()

	// 10 or 11 digits, or empty when the field is optional
	require.NoError(t, v.Validate(phoneField{Phone: "1187654321"}))
	require.NoError(t, v.Validate(phoneField{Phone: "11987654321"}))
	require.NoError(t, v.Validate(phoneField{Phone: ""}))

	require.Error(t, v.Validate(phoneField{Phone: "119876543"}))
	require.Error(t, v.Validate(phoneField{Phone: "119876543210"}))
	require.Error(t, v.Validate(phoneField{Phone: "(11) 98765-4321"}))
	require.Error(t, v.Validate(phoneField{Phone: "11 98765432"}))
}

func TestCPF(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Validate(cpfField{CPF: "12345678901"}))
	require.NoError(t, v.Validate(cpfField{CPF: ""}))

	require.Error(t, v.Validate(cpfField{CPF: "1234567890"}))
	require.Error(t, v.Validate(cpfField{CPF: "123456789012"}))
	require.Error(t, v.Validate(cpfField{CPF: "123.456.789-01"}))
}

func TestMaxWords(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Validate(notesField{Notes: ""}))
	require.NoError(t, v.Validate(notesField{Notes: "paciente prefere horários pela manhã"}))
	// the boundary sits at exactly ten words
	require.NoError(t, v.Validate(notesField{Notes: strings.Repeat("palavra ", 10)}))

	require.Error(t, v.Validate(notesField{Notes: strings.Repeat("palavra ", 11)}))
}

func TestHHMM(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Validate(timeField{Time: "00:00"}))
	require.NoError(t, v.Validate(timeField{Time: "08:30"}))
	require.NoError(t, v.Validate(timeField{Time: "23:59"}))

	require.Error(t, v.Validate(timeField{Time: ""}))
	require.Error(t, v.Validate(timeField{Time: "24:00"}))
	require.Error(t, v.Validate(timeField{Time: "12:60"}))
	require.Error(t, v.Validate(timeField{Time: "9:00"}))
	require.Error(t, v.Validate(timeField{Time: "0900"}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(notesField{Notes: strings.Repeat("palavra ", 11)})
	require.Error(t, err)

	errors := v.FormatValidationErrors(err)
	require.Equal(t, "Notes must have at most 10 words", errors["Notes"])
}
