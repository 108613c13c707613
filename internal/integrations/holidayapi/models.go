package holidayapi

// holidayDTO модель праздника из внешнего API (формат Nager.Date)
type holidayDTO struct {
	Date        string `json:"date"` // YYYY-MM-DD
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Global      bool   `json:"global"`
}
