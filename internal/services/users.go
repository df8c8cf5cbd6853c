package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
	"pharmaevents.app/internal/repositories"
)

// ErrCannotDeleteSelf is returned when a signed-in admin tries to
// delete their own account.
var ErrCannotDeleteSelf = errors.New("you cannot delete your own account")

type UserService struct {
	users *repositories.UserRepository
}

func (service *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return service.users.GetAll(ctx)
}

func (service *UserService) Create(
	ctx context.Context,
	createUserDto *dtos.CreateUserDto,
) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(createUserDto.Password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	return service.users.Create(
		ctx,
		createUserDto.Email,
		string(hash),
		createUserDto.Role,
	)
}

// BulkCreate creates the valid rows of a bulk upload and reports the
// rest. Rows are validated up front so one bad line never blocks the
// others; duplicates against the store and within the file are skipped.
func (service *UserService) BulkCreate(
	ctx context.Context,
	rows []dtos.BulkUserRow,
) (int, []string, error) {
	existing, err := service.users.GetAll(ctx)
	if err != nil {
		return 0, nil, err
	}

	taken := map[string]bool{}
	for _, user := range existing {
		taken[strings.ToLower(user.Email)] = true
	}

	created := 0
	errs := []string{}
	for _, row := range rows {
		if ok, fieldErrs := row.User.Validate(); !ok {
			errs = append(errs, fmt.Sprintf(
				"row %d: %s",
				row.Line,
				joinFieldErrors(fieldErrs),
			))
			continue
		}

		if taken[row.User.Email] {
			errs = append(errs, fmt.Sprintf(
				"row %d: a user with email %q already exists",
				row.Line,
				row.User.Email,
			))
			continue
		}

		if _, err = service.Create(ctx, &row.User); err != nil {
			return created, errs, err
		}

		taken[row.User.Email] = true
		created++
	}

	return created, errs, nil
}

func joinFieldErrors(fieldErrs map[string]string) string {
	parts := make([]string, 0, len(fieldErrs))
	for field, message := range fieldErrs {
		parts = append(parts, field+" "+message)
	}

	return strings.Join(parts, "; ")
}

func (service *UserService) Delete(
	ctx context.Context,
	current models.User,
	id int64,
) error {
	if current.ID == id {
		return ErrCannotDeleteSelf
	}

	return service.users.Delete(ctx, id)
}
