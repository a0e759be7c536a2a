package model

// Address is a shipping destination owned by exactly one user.
type Address struct {
	ID        int64
	UserID    int64
	FirstName string
	LastName  string
	Email     string
	Street    string
	City      string
	State     string
	Zipcode   string
	Country   string
	Phone     string
}
