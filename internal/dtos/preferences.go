package dtos

import "github.com/xdoubleu/essentia/v2/pkg/validate"

const (
	ViewCard = "card"
	ViewList = "list"
)

type ViewPreferenceDto struct {
	View string `json:"view"`
}

func (dto *ViewPreferenceDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "view", dto.View, validate.IsInSlice([]string{ViewCard, ViewList}))

	return v.Valid(), v.Errors()
}
