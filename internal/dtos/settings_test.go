package dtos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pharmaevents.app/internal/dtos"
)

func TestThemeColorDto(t *testing.T) {
	valid := dtos.ThemeColorDto{ThemeColor: "#0f6e84"}
	ok, errs := valid.Validate()
	assert.True(t, ok)
	assert.Empty(t, errs)

	for _, value := range []string{"red", "#0f6e8", "#0f6e841", "0f6e84", ""} {
		dto := dtos.ThemeColorDto{ThemeColor: value}
		ok, errs = dto.Validate()
		assert.False(t, ok)
		assert.Contains(t, errs, "theme_color")
	}
}

func TestLogoDto(t *testing.T) {
	valid := dtos.LogoDto{
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        1024,
	}
	ok, errs := valid.Validate()
	assert.True(t, ok)
	assert.Empty(t, errs)

	wrongType := dtos.LogoDto{
		Filename:    "logo.gif",
		ContentType: "image/gif",
		Size:        1024,
	}
	ok, errs = wrongType.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "logo")

	tooBig := dtos.LogoDto{
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        dtos.MaxLogoSize + 1,
	}
	ok, errs = tooBig.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "logo")

	empty := dtos.LogoDto{
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        0,
	}
	ok, errs = empty.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "logo")
}

func TestViewPreferenceDto(t *testing.T) {
	for _, view := range []string{dtos.ViewCard, dtos.ViewList} {
		dto := dtos.ViewPreferenceDto{View: view}
		ok, errs := dto.Validate()
		assert.True(t, ok)
		assert.Empty(t, errs)
	}

	dto := dtos.ViewPreferenceDto{View: "grid"}
	ok, errs := dto.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "view")
}
