// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus represents the admin verification state of a vendor.
// Only accepted vendors are visible to buyers or eligible for notifications.
type VerificationStatus string

const (
	// VerificationPending is the initial state of a newly created vendor profile.
	VerificationPending VerificationStatus = "PENDING"
	// VerificationAccepted marks a vendor as verified and visible to buyers.
	VerificationAccepted VerificationStatus = "ACCEPTED"
	// VerificationRejected marks a vendor as rejected by an admin.
	VerificationRejected VerificationStatus = "REJECTED"
)

// Vendor represents a street vendor (PKL) broadcasting live location.
type Vendor struct {
	ID                 uuid.UUID          `json:"id"`                  // The Global Unique Identifier (GUID) for the vendor.
	UserID             uuid.UUID          `json:"user_id"`             // The ID of the user account that owns this vendor profile.
	BusinessName       string             `json:"business_name"`       // The vendor's display name, used for text matching.
	Category           string             `json:"category"`            // The category/type of goods sold, used for text matching.
	OperatingHours     string             `json:"operating_hours"`     // Free-form operating hours description.
	About              string             `json:"about"`               // Free-form description of the vendor.
	HomeAddress        string             `json:"home_address"`        // The vendor's registered home address.
	BankAccountName    string             `json:"bank_account_name"`   // Account name used for deposit payments.
	QRISLink           string             `json:"qris_link"`           // QRIS payment link rendered as a QR code for buyers.
	IsActive           bool               `json:"is_active"`           // Whether the vendor is currently broadcasting location.
	VerificationStatus VerificationStatus `json:"verification_status"` // Admin verification state.
	VerificationNote   string             `json:"verification_note"`   // Optional admin note attached to the verification decision.
	CreatedAt          time.Time          `json:"created_at"`          // Timestamp of when this profile was created.
	UpdatedAt          time.Time          `json:"updated_at"`          // Timestamp of the last modification.
}

// IsVisibleToBuyers reports whether the vendor may appear in buyer-facing
// listings and proximity checks.
func (v *Vendor) IsVisibleToBuyers() bool {
	return v.IsActive && v.VerificationStatus == VerificationAccepted
}
