package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel is the GORM-specific struct for the 'vendors' table.
// PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type VendorModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;unique"`
	BusinessName       string    `gorm:"type:varchar(100);not null"`
	Category           string    `gorm:"type:varchar(50);not null"`
	OperatingHours     string    `gorm:"type:text"`
	About              string    `gorm:"type:text"`
	HomeAddress        string    `gorm:"type:text"`
	BankAccountName    string    `gorm:"type:varchar(100)"`
	QRISLink           string    `gorm:"type:text"`
	IsActive           bool      `gorm:"not null;default:false;index"`
	VerificationStatus string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	VerificationNote   string    `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Locations []VendorLocationModel `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
