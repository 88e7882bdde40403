package domain

import "time"

type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	DfacID    *int
	DeletedAt *time.Time
}
