package model

// ContactPatch is a sparse update of a stored contact. A nil field is absent and leaves the stored value
// untouched; a non-nil field, including a pointer to the empty string, replaces it.
//
// No cross-field rules apply: changing the first or last name does not touch the display name.
type ContactPatch struct {
	ID          int64   `db:"id" validate:"gt=0"`
	FirstName   *string `db:"first_name"`
	LastName    *string `db:"last_name"`
	DisplayName *string `db:"display_name"`
	Email       *string `db:"email"`
	PhoneNumber *string `db:"phone_number"`
}

// NewContactPatch builds a patch for the contact with the given id. It fails if the id is not positive.
func NewContactPatch(id int64, firstName, lastName, displayName, email, phone *string) (ContactPatch, error) {
	p := ContactPatch{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		DisplayName: displayName,
		Email:       email,
		PhoneNumber: phone,
	}
	if err := checkStruct(p); err != nil {
		return ContactPatch{}, err
	}
	return p, nil
}

// Columns returns the column values of all present fields, keyed by column name.
func (p ContactPatch) Columns() map[string]any {
	cols := make(map[string]any, 5)
	if p.FirstName != nil {
		cols["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		cols["last_name"] = *p.LastName
	}
	if p.DisplayName != nil {
		cols["display_name"] = *p.DisplayName
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.PhoneNumber != nil {
		cols["phone_number"] = *p.PhoneNumber
	}
	return cols
}

// IsEmpty reports whether the patch carries no field at all.
func (p ContactPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Apply merges the patch onto c and returns the result.
func (p ContactPatch) Apply(c Contact) Contact {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.DisplayName != nil {
		c.DisplayName = *p.DisplayName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}
	return c
}
