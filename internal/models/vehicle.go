package models

// All fields are free text, exactly as customers type them. Year and
// mileage stay strings; the mileage parser lives with the service
// recommendation logic.
type Vehicle struct {
	Make    string `gorm:"size:50" json:"make"`
	Model   string `gorm:"size:50" json:"model"`
	Year    string `gorm:"size:10" json:"year"`
	VIN     string `gorm:"size:30" json:"vin"`
	Plate   string `gorm:"size:20" json:"plate"`
	Mileage string `gorm:"size:20" json:"mileage"`
	Issues  string `gorm:"type:text" json:"issues"`
}
