package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"pharmaevents.app/internal/dtos"
	"pharmaevents.app/internal/models"
	"pharmaevents.app/internal/repositories"
)

type SettingsService struct {
	logger     *slog.Logger
	settings   *repositories.SettingRepository
	categories *repositories.CategoryRepository
	eventTypes *repositories.EventTypeRepository
	uploadDir  string
}

// Branding is everything a page needs to render the configurable
// chrome: name, theme colour, logo and the login page copy.
type Branding struct {
	AppName      string
	ThemeColor   string
	LogoURL      string
	LoginContent map[string]string
}

func DefaultBranding() *Branding {
	return &Branding{
		AppName:      models.DefaultAppName,
		ThemeColor:   models.DefaultThemeColor,
		LogoURL:      "",
		LoginContent: map[string]string{},
	}
}

func (service *SettingsService) Branding(ctx context.Context) (*Branding, error) {
	settings, err := service.settings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	branding := DefaultBranding()
	if name, ok := settings[models.SettingAppName]; ok && name != "" {
		branding.AppName = name
	}
	if color, ok := settings[models.SettingThemeColor]; ok && color != "" {
		branding.ThemeColor = color
	}
	if logo, ok := settings[models.SettingAppLogo]; ok && logo != "" {
		branding.LogoURL = "/uploads/" + logo
	}

	for _, key := range models.LoginContentKeys {
		if value, ok := settings[key]; ok {
			branding.LoginContent[key] = value
		}
	}

	return branding, nil
}

func (service *SettingsService) UpdateAppName(
	ctx context.Context,
	appNameDto *dtos.AppNameDto,
) error {
	return service.settings.Set(ctx, models.SettingAppName, appNameDto.Name)
}

func (service *SettingsService) UpdateThemeColor(
	ctx context.Context,
	themeColorDto *dtos.ThemeColorDto,
) error {
	return service.settings.Set(
		ctx,
		models.SettingThemeColor,
		themeColorDto.ThemeColor,
	)
}

func (service *SettingsService) UpdateLoginContent(
	ctx context.Context,
	loginContentDto *dtos.LoginContentDto,
) error {
	for key, value := range loginContentDto.Values() {
		if err := service.settings.Set(ctx, key, value); err != nil {
			return err
		}
	}

	return nil
}

// SaveLogo stores the uploaded logo under a fresh name and records it
// as the active logo. Returns the public URL of the stored file.
func (service *SettingsService) SaveLogo(
	ctx context.Context,
	src io.Reader,
	logoDto *dtos.LogoDto,
) (string, error) {
	filename := fmt.Sprintf(
		"%s%s",
		uuid.NewString(),
		extensionFor(logoDto.ContentType, logoDto.Filename),
	)

	if err := saveUpload(service.uploadDir, filename, src); err != nil {
		return "", err
	}

	if err := service.settings.Set(ctx, models.SettingAppLogo, filename); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}

func (service *SettingsService) Categories(
	ctx context.Context,
) ([]models.Category, error) {
	return service.categories.GetAll(ctx)
}

func (service *SettingsService) CreateCategory(
	ctx context.Context,
	createCategoryDto *dtos.CreateCategoryDto,
) (*models.Category, error) {
	return service.categories.Create(ctx, createCategoryDto.Name)
}

func (service *SettingsService) DeleteCategory(
	ctx context.Context,
	id int64,
) error {
	return service.categories.Delete(ctx, id)
}

func (service *SettingsService) EventTypes(
	ctx context.Context,
) ([]models.EventType, error) {
	return service.eventTypes.GetAll(ctx)
}

func (service *SettingsService) CreateEventType(
	ctx context.Context,
	createEventTypeDto *dtos.CreateEventTypeDto,
) (*models.EventType, error) {
	return service.eventTypes.Create(ctx, createEventTypeDto.Name)
}

func (service *SettingsService) DeleteEventType(
	ctx context.Context,
	id int64,
) error {
	return service.eventTypes.Delete(ctx, id)
}

func extensionFor(contentType string, filename string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/svg+xml":
		return ".svg"
	default:
		return filepath.Ext(filename)
	}
}

func saveUpload(dir string, filename string, src io.Reader) error {
	//nolint:mnd //owner rwx
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
