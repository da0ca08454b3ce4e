package person

import "time"

// Gender of a generated person.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Name holds the given and family parts of a person's name.
type Name struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

// Full returns "Given Family".
func (n Name) Full() string {
	return n.Given + " " + n.Family
}

// Address is a US-shaped postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Contact holds phone and email details.
type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Person is one generated synthetic individual.
type Person struct {
	ID        string    `json:"id"`
	Name      Name      `json:"name"`
	Gender    Gender    `json:"gender"`
	BirthDate time.Time `json:"birth_date"`
	Age       int       `json:"age"`
	Address   *Address  `json:"address,omitempty"`
	Contact   Contact   `json:"contact"`
}
