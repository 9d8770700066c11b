package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("9876543210").Valid)
	assert.False(t, ValidatePhone("1234567890").Valid, "leading digit")
	assert.False(t, ValidatePhone("98765432").Valid, "length")
	assert.False(t, ValidatePhone("98765432101").Valid)
	assert.False(t, ValidatePhone(" 9876543210").Valid)
}

func TestValidatePincode(t *testing.T) {
	assert.True(t, ValidatePincode("123456").Valid)
	assert.True(t, ValidatePincode("781009").Valid)

	r := ValidatePincode("000000")
	assert.False(t, r.Valid)
	assert.Equal(t, "Sorry, we do not deliver to this pincode yet.", r.Message)
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("Asha").Valid)
	assert.False(t, ValidateName("   ").Valid)
	assert.False(t, ValidateName("").Valid)
}

func TestValidateAddress(t *testing.T) {
	assert.True(t, ValidateAddress("12 MG Road, Pune").Valid)
	assert.False(t, ValidateAddress("  short   ").Valid)
	assert.True(t, ValidateAddress("  1234567890  ").Valid)
}

func TestValidateCardNumber(t *testing.T) {
	valid := []string{
		"4111111111111111",
		"4111 1111 1111 1111",
		"4111 11111111 1111",
		" 4111 1111 1111 1111 ",
	}
	for _, v := range valid {
		assert.True(t, ValidateCardNumber(v).Valid, v)
	}

	invalid := []string{
		"4111 1111 1111 111",
		"4111  1111 1111 1111",
		"4111-1111-1111-1111",
		"41111111111111112",
		"",
	}
	for _, v := range invalid {
		assert.False(t, ValidateCardNumber(v).Valid, v)
	}
}

func TestValidateExpiry(t *testing.T) {
	assert.False(t, ValidateExpiry("01/20", now).Valid, "past")
	assert.False(t, ValidateExpiry("10/26", now).Valid, "current month already started")
	assert.True(t, ValidateExpiry("11/26", now).Valid, "next month")
	assert.True(t, ValidateExpiry("01/30", now).Valid)

	assert.False(t, ValidateExpiry("13/30", now).Valid)
	assert.False(t, ValidateExpiry("00/30", now).Valid)
	assert.False(t, ValidateExpiry("1/30", now).Valid)
	assert.False(t, ValidateExpiry("01-30", now).Valid)
}

func TestValidateExpiryFirstOfMonthAtMidnight(t *testing.T) {
	midnight := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, ValidateExpiry("11/26", midnight).Valid)
}

func TestValidateCVV(t *testing.T) {
	assert.True(t, ValidateCVV("123").Valid)
	assert.True(t, ValidateCVV("1234").Valid)
	assert.False(t, ValidateCVV("12").Valid)
	assert.False(t, ValidateCVV("12a").Valid)
}

func TestValidateStepCollectsEveryFailure(t *testing.T) {
	errs := ValidateStep(3, Form{
		FieldCardNumber: "1234",
		FieldExpiry:     "01/20",
		FieldCVV:        "1",
	}, now)

	assert.Len(t, errs, 3)
	assert.Contains(t, errs, FieldCardNumber)
	assert.Contains(t, errs, FieldExpiry)
	assert.Contains(t, errs, FieldCVV)
}

func TestFormatCardNumber(t *testing.T) {
	cases := map[string]string{
		"4111111111111111":    "4111 1111 1111 1111",
		"4111-1111-1111-1111": "4111 1111 1111 1111",
		"41111":               "4111 1",
		"4111 ":               "4111",
		"abc":                 "",
		"4111 1111 1111 1111": "4111 1111 1111 1111",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCardNumber(in), in)
	}
}

func TestWizardNextAdvancesOnlyWhenValid(t *testing.T) {
	w := NewWizard()

	require.False(t, w.Next(Form{FieldName: " ", FieldPhone: "123"}, now))
	assert.Equal(t, 1, w.Step)
	assert.Len(t, w.Errors, 2)

	require.True(t, w.Next(Form{FieldName: "Asha", FieldPhone: "9876543210"}, now))
	assert.Equal(t, 2, w.Step)
	assert.Empty(t, w.Errors, "previous errors cleared")
	assert.Equal(t, "Asha", w.Fields[FieldName])
}

func TestWizardPrevIsUnconditional(t *testing.T) {
	w := NewWizard()
	require.True(t, w.Next(Form{FieldName: "Asha", FieldPhone: "9876543210"}, now))

	w.Prev(nil)
	assert.Equal(t, 1, w.Step)

	w.Prev(nil)
	assert.Equal(t, 1, w.Step, "never below the first step")
}

func TestWizardPrevKeepsTypedDelivery(t *testing.T) {
	w := NewWizard()
	require.True(t, w.Next(Form{FieldName: "Asha", FieldPhone: "9876543210"}, now))

	w.Prev(Form{FieldAddress: "12 MG Road", FieldPincode: "000"})
	assert.Equal(t, 1, w.Step)
	assert.Equal(t, "12 MG Road", w.Fields[FieldAddress])
	assert.Equal(t, "000", w.Fields[FieldPincode])
	assert.Equal(t, "Asha", w.Fields[FieldName])
}

func TestWizardPrevDropsPayment(t *testing.T) {
	w := Wizard{Step: LastStep}
	w.Prev(Form{FieldCardNumber: "4111 1111 1111 1111", FieldCVV: "123"})

	assert.Equal(t, 2, w.Step)
	assert.NotContains(t, w.Fields, FieldCardNumber)
	assert.NotContains(t, w.Fields, FieldCVV)
}

func TestWizardNeverPassesLastStep(t *testing.T) {
	w := Wizard{Step: LastStep}
	require.True(t, w.Next(Form{
		FieldCardNumber: "4111 1111 1111 1111",
		FieldExpiry:     "12/30",
		FieldCVV:        "123",
	}, now))
	assert.Equal(t, LastStep, w.Step)
}

func TestWizardSubmit(t *testing.T) {
	w := NewWizard()
	_, err := w.Submit(Form{}, now)
	assert.ErrorIs(t, err, ErrNotAtFinalStep)

	w.Step = LastStep
	valid, err := w.Submit(Form{FieldCardNumber: "4111111111111111", FieldExpiry: "01/20", FieldCVV: "123"}, now)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Equal(t, LastStep, w.Step)
	assert.Contains(t, w.Errors, FieldExpiry)

	valid, err = w.Submit(Form{FieldCardNumber: "4111111111111111", FieldExpiry: "12/30", FieldCVV: "123"}, now)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Empty(t, w.Errors)
}

func TestWizardNeverStoresCardData(t *testing.T) {
	w := Wizard{Step: LastStep}
	w.Next(Form{FieldCardNumber: "4111111111111111", FieldExpiry: "12/30", FieldCVV: "123"}, now)

	for f := range w.Fields {
		assert.False(t, IsPaymentField(f), f)
	}
}

func TestWizardSteps(t *testing.T) {
	w := Wizard{Step: 2}
	assert.Equal(t, []StepView{
		{Number: 1, Visible: false, Reached: true},
		{Number: 2, Visible: true, Reached: true},
		{Number: 3, Visible: false, Reached: false},
	}, w.Steps())
}
