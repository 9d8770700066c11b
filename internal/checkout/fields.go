package checkout

// Field names match the form input names.
const (
	FieldName       = "name"
	FieldPhone      = "phone"
	FieldAddress    = "address"
	FieldPincode    = "pincode"
	FieldCardNumber = "card-number"
	FieldExpiry     = "expiry"
	FieldCVV        = "cvv"
)

const (
	FirstStep = 1
	LastStep  = 3
)

var stepFields = map[int][]string{
	1: {FieldName, FieldPhone},
	2: {FieldAddress, FieldPincode},
	3: {FieldCardNumber, FieldExpiry, FieldCVV},
}

// StepFields lists the inputs shown on a step, in form order.
func StepFields(step int) []string {
	return append([]string(nil), stepFields[step]...)
}

// IsPaymentField reports whether a field holds card data. Card data is only
// ever validated; it is never kept past the request carrying it.
func IsPaymentField(field string) bool {
	switch field {
	case FieldCardNumber, FieldExpiry, FieldCVV:
		return true
	}
	return false
}

// Form is the set of submitted input values keyed by field name.
type Form map[string]string

// Errors maps a failing field to the message shown next to it.
// An empty Errors means the step is valid.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }
