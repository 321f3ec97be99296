package models

// Guide sheet column headers, in their fixed stored order. The names match
// the spreadsheet the tool has always read from, so they stay in Spanish.
var GuideColumns = []string{
	"Ciudad",
	"Nombre de Guía",
	"Apellido",
	"Correo EMV",
	"Correo Personal",
	"ID",
}

// GuideRecord is one row of the guide directory
type GuideRecord struct {
	ID            string `json:"id"`
	City          string `json:"city"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name,omitempty"`
	WorkEmail     string `json:"work_email"`
	PersonalEmail string `json:"personal_email,omitempty"`
}

// GuideFields carries the editable fields of a record, without identity
type GuideFields struct {
	City          string `json:"city"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	WorkEmail     string `json:"work_email"`
	PersonalEmail string `json:"personal_email"`
}

// GuideFromRow parses one sheet row into a record. Short rows are tolerated:
// older sheets had neither the Apellido nor the ID column.
func GuideFromRow(row []string) GuideRecord {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return GuideRecord{
		City:          cell(0),
		FirstName:     cell(1),
		LastName:      cell(2),
		WorkEmail:     cell(3),
		PersonalEmail: cell(4),
		ID:            cell(5),
	}
}

// Row serializes the record into sheet column order
func (g GuideRecord) Row() []string {
	return []string{g.City, g.FirstName, g.LastName, g.WorkEmail, g.PersonalEmail, g.ID}
}

// Apply overwrites the editable fields, keeping the record's identity
func (g *GuideRecord) Apply(f GuideFields) {
	g.City = f.City
	g.FirstName = f.FirstName
	g.LastName = f.LastName
	g.WorkEmail = f.WorkEmail
	g.PersonalEmail = f.PersonalEmail
}
