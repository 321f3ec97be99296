package models

// Admin sheet column headers
var AdminColumns = []string{"Usuario", "Password"}

// AdminCredential is one row of the ADMIN tab. Passwords are stored in the
// sheet in plaintext and compared by exact, case-sensitive equality.
type AdminCredential struct {
	Username string
	Password string
}

// CredentialFromRow parses one ADMIN sheet row
func CredentialFromRow(row []string) AdminCredential {
	cred := AdminCredential{}
	if len(row) > 0 {
		cred.Username = row[0]
	}
	if len(row) > 1 {
		cred.Password = row[1]
	}
	return cred
}

// Matches reports whether the submitted pair equals this row exactly
func (c AdminCredential) Matches(username, password string) bool {
	return c.Username == username && c.Password == password
}
