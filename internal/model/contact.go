package model

// Contact is the data structure for a person that we know. All fields are mandatory. The display name
// is derived once at construction time and never recomputed afterwards.
type Contact struct {
	FirstName   string `db:"first_name"   validate:"required"`
	LastName    string `db:"last_name"    validate:"required"`
	DisplayName string `db:"display_name"`
	Email       string `db:"email"        validate:"required"`
	PhoneNumber string `db:"phone_number" validate:"required"`
}

// IndexedContact is a contact together with the id the store assigned to it.
type IndexedContact struct {
	ID int64 `db:"id"`
	Contact
}

// NewContact builds a contact from raw input. Emptiness is checked on the raw values; no trimming or
// other normalization takes place.
func NewContact(firstName, lastName, email, phone string) (Contact, error) {
	c := Contact{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phone,
	}
	if err := checkStruct(c); err != nil {
		return Contact{}, err
	}
	c.DisplayName = firstName + " " + lastName
	return c, nil
}
