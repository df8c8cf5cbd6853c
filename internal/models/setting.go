package models

// Setting keys understood by the settings store.
const (
	SettingAppName    = "app_name"
	SettingThemeColor = "theme_color"
	SettingAppLogo    = "app_logo"

	DefaultAppName    = "PharmaEvents"
	DefaultThemeColor = "#0f6e84"
)

// LoginContentKeys are the editable copy blocks of the login page.
var LoginContentKeys = []string{
	"main_tagline",
	"main_header",
	"app_description",
	"feature1_title",
	"feature1_description",
	"feature2_title",
	"feature2_description",
}

// Governorates lists the regions selectable as a venue scope for
// in-person events.
var Governorates = []string{
	"Alexandria", "Aswan", "Asyut", "Beheira", "Beni Suef",
	"Cairo", "Dakahlia", "Damietta", "Faiyum", "Gharbia",
	"Giza", "Ismailia", "Kafr El Sheikh", "Luxor", "Matruh",
	"Minya", "Monufia", "New Valley", "North Sinai", "Port Said",
	"Qalyubia", "Qena", "Red Sea", "Sharqia", "Sohag",
	"South Sinai", "Suez",
}
