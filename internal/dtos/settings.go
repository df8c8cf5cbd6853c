package dtos

import (
	"regexp"
	"slices"
	"strings"

	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

var themeColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// MaxLogoSize caps logo uploads at 2 MiB.
const MaxLogoSize = 2 << 20

var allowedLogoTypes = []string{
	"image/png",
	"image/jpeg",
	"image/jpg",
	"image/svg+xml",
}

type AppNameDto struct {
	Name string `json:"name"`
}

func (dto *AppNameDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "name", strings.TrimSpace(dto.Name), validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}

type ThemeColorDto struct {
	ThemeColor string `json:"theme_color"`
}

func (dto *ThemeColorDto) Validate() (bool, map[string]string) {
	errs := map[string]string{}

	if !themeColorPattern.MatchString(dto.ThemeColor) {
		errs["theme_color"] = "must be a hex color like #0f6e84"
	}

	return len(errs) == 0, errs
}

type LoginContentDto struct {
	MainTagline         string `json:"main_tagline"`
	MainHeader          string `json:"main_header"`
	AppDescription      string `json:"app_description"`
	Feature1Title       string `json:"feature1_title"`
	Feature1Description string `json:"feature1_description"`
	Feature2Title       string `json:"feature2_title"`
	Feature2Description string `json:"feature2_description"`
}

// Values maps the content onto its setting-store keys.
func (dto *LoginContentDto) Values() map[string]string {
	return map[string]string{
		"main_tagline":         dto.MainTagline,
		"main_header":          dto.MainHeader,
		"app_description":      dto.AppDescription,
		"feature1_title":       dto.Feature1Title,
		"feature1_description": dto.Feature1Description,
		"feature2_title":       dto.Feature2Title,
		"feature2_description": dto.Feature2Description,
	}
}

// LogoDto describes an uploaded logo file. Both checks must pass before
// any byte of the upload is stored.
type LogoDto struct {
	Filename    string
	ContentType string
	Size        int64
}

func (dto *LogoDto) Validate() (bool, map[string]string) {
	errs := map[string]string{}

	if !slices.Contains(allowedLogoTypes, dto.ContentType) {
		errs["logo"] = "must be a PNG, JPG or SVG file"
	}
	if dto.Size > MaxLogoSize {
		errs["logo"] = "must be smaller than 2MB"
	}
	if dto.Size == 0 {
		errs["logo"] = "must be provided"
	}

	return len(errs) == 0, errs
}

type CreateCategoryDto struct {
	Name string `schema:"category_name"`
}

func (dto *CreateCategoryDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "category_name", strings.TrimSpace(dto.Name), validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}

type CreateEventTypeDto struct {
	Name string `schema:"type_name"`
}

func (dto *CreateEventTypeDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "type_name", strings.TrimSpace(dto.Name), validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
