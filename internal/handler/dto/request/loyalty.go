package request

import (
	"github.com/google/uuid"
)

type EarnRequest struct {
	PublicID     string `json:"publicId" binding:"required"`
	Token        string `json:"token" binding:"required"`
	WalletPassID string `json:"walletPassId" binding:"required"`
}

type ConsumeRequest struct {
	MembershipID uuid.UUID `json:"membershipId" binding:"required"`
	WalletPassID string    `json:"walletPassId" binding:"required"`
}
