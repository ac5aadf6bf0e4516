// Package model contains the JSON documents of the contact book REST API.
package model

// Contact is the JSON form of a stored contact.
type Contact struct {
	Id          int64  `json:"id"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	DisplayName string `json:"displayname"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// ContactInput is the body of POST and PUT requests. All fields are optional in the JSON. For POST,
// firstname, lastname, email and phone must be present and non-empty. For PUT, only the present fields
// are changed; displayname may only be set by PUT.
type ContactInput struct {
	FirstName   *string `json:"firstname,omitempty"`
	LastName    *string `json:"lastname,omitempty"`
	DisplayName *string `json:"displayname,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// Metadata is the JSON form of a contact's metadata. Timestamps use the storage format, e.g.
// 2024-05-01T13:45:00.123Z.
type Metadata struct {
	ContactId      int64   `json:"contactid"`
	Starred        bool    `json:"starred"`
	IsArchived     bool    `json:"archived"`
	Frequency      *int64  `json:"frequency,omitempty"`
	CreatedAt      string  `json:"createdat"`
	UpdatedAt      string  `json:"updatedat"`
	LastSeenAt     *string `json:"lastseenat,omitempty"`
	NextReminderAt *string `json:"nextreminderat,omitempty"`
	LastReminderAt *string `json:"lastreminderat,omitempty"`
}

// Message is the body of error responses and of DELETE responses.
type Message struct {
	Message string `json:"message"`
	Id      int64  `json:"id,omitempty"`
}
