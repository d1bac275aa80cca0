package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type MembershipCardView struct {
	MembershipID      uuid.UUID  `json:"membershipId"`
	WalletPassID      string     `json:"walletPassId"`
	StampsBalance     int32      `json:"stampsBalance"`
	TotalEarned       int32      `json:"totalEarned"`
	RewardThreshold   int32      `json:"rewardThreshold"`
	RewardDescription string     `json:"rewardDescription"`
	RewardUnlocked    bool       `json:"rewardUnlocked"`
	ProximityMessage  *string    `json:"proximityMessage,omitempty"`
	NextEligibleAt    *time.Time `json:"nextEligibleAt,omitempty"`
}

type ProgramCardView struct {
	PublicID          string `json:"publicId"`
	City              string `json:"city"`
	RewardThreshold   int32  `json:"rewardThreshold"`
	RewardDescription string `json:"rewardDescription"`
	Active            bool   `json:"active"`
}

type RedemptionSessionView struct {
	ID                uuid.UUID `json:"id"`
	State             string    `json:"state"`
	RewardDescription string    `json:"rewardDescription"`
	ConsumedAt        time.Time `json:"consumedAt"`
	DisplayExpiresAt  time.Time `json:"displayExpiresAt"`
	RemainingSeconds  int64     `json:"remainingSeconds"`
}
