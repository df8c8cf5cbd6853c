package dtos

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"pharmaevents.app/internal/models"
)

// emailPattern is the standard local@domain.tld shape; the mail server
// remains the final authority on deliverability.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`,
)

const minPasswordLen = 6

type CreateUserDto struct {
	Email    string `schema:"email"`
	Password string `schema:"password"`
	Role     string `schema:"role"`
}

func (dto *CreateUserDto) Validate() (bool, map[string]string) {
	errs := map[string]string{}

	email := strings.TrimSpace(dto.Email)
	switch {
	case email == "":
		errs["email"] = "must be provided"
	case !emailPattern.MatchString(email):
		errs["email"] = "must be a valid email address"
	}

	switch {
	case dto.Password == "":
		errs["password"] = "must be provided"
	case len(dto.Password) < minPasswordLen:
		errs["password"] = "must be at least 6 characters long"
	}

	if !slices.Contains(models.Roles(), dto.Role) {
		errs["role"] = "must be selected"
	}

	return len(errs) == 0, errs
}

// roleAliases maps human spellings from uploaded sheets onto the role
// constants.
var roleAliases = map[string]models.Role{
	"admin":         models.RoleAdmin,
	"event manager": models.RoleEventManager,
	"event_manager": models.RoleEventManager,
	"medical rep":   models.RoleMedicalRep,
	"medical_rep":   models.RoleMedicalRep,
}

// NormalizeRole resolves a free-form role spelling. Unknown values come
// back unchanged so Validate can reject them with the row intact.
func NormalizeRole(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if role, ok := roleAliases[normalized]; ok {
		return role
	}

	return normalized
}

// BulkUserRow is one parsed line of a bulk upload, keeping its source
// line number for error reporting.
type BulkUserRow struct {
	Line int
	User CreateUserDto
}

// UsersFromCSV parses a bulk user upload. The header row is matched by
// column name so the sheet may carry extra columns in any order; rows
// with the wrong field count are reported, not fatal.
func UsersFromCSV(src io.Reader) ([]BulkUserRow, []string) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, []string{"the file is empty or not valid CSV"}
	}

	emailCol, passwordCol, roleCol := -1, -1, -1
	for i, name := range header {
		switch {
		case strings.Contains(strings.ToLower(name), "email"):
			emailCol = i
		case strings.Contains(strings.ToLower(name), "password"):
			passwordCol = i
		case strings.Contains(strings.ToLower(name), "role"):
			roleCol = i
		}
	}

	missing := []string{}
	if emailCol < 0 {
		missing = append(missing, "Email")
	}
	if passwordCol < 0 {
		missing = append(missing, "Password")
	}
	if roleCol < 0 {
		missing = append(missing, "Role")
	}
	if len(missing) > 0 {
		return nil, []string{
			"missing required columns: " + strings.Join(missing, ", "),
		}
	}

	rows := []BulkUserRow{}
	errs := []string{}
	for line := 2; ; line++ {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			errs = append(errs, fmt.Sprintf("row %d: not valid CSV", line))
			continue
		}

		width := max(emailCol, passwordCol, roleCol)
		if len(record) <= width {
			errs = append(errs, fmt.Sprintf("row %d: missing fields", line))
			continue
		}

		rows = append(rows, BulkUserRow{
			Line: line,
			User: CreateUserDto{
				Email:    strings.ToLower(strings.TrimSpace(record[emailCol])),
				Password: strings.TrimSpace(record[passwordCol]),
				Role:     NormalizeRole(record[roleCol]),
			},
		})
	}

	return rows, errs
}
