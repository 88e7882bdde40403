package domain

import "time"

type Dfac struct {
	ID        int
	DfacName  string
	Street    string
	City      string
	State     string
	Zip       string
	DfacPhone *string
	DeletedAt *time.Time
}
