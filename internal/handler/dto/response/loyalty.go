package response

import (
	"time"

	"qwikker-loyalty/internal/usecase/commands"
	"qwikker-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type EarnResponse struct {
	Success          bool       `json:"success"`
	NewBalance       int        `json:"newBalance"`
	Threshold        int        `json:"threshold"`
	RewardUnlocked   bool       `json:"rewardUnlocked"`
	ProximityMessage *string    `json:"proximityMessage,omitempty"`
	NextEligibleAt   *time.Time `json:"nextEligibleAt,omitempty"`
	Reason           *string    `json:"reason,omitempty"`
}

func FromEarnResult(r *commands.EarnResult) *EarnResponse {
	return &EarnResponse{
		Success:          r.Success,
		NewBalance:       r.NewBalance,
		Threshold:        r.Threshold,
		RewardUnlocked:   r.RewardUnlocked,
		ProximityMessage: r.ProximityMessage,
		NextEligibleAt:   r.NextEligibleAt,
		Reason:           r.Reason,
	}
}

type ConsumeResponse struct {
	SessionID         uuid.UUID `json:"sessionId"`
	RewardDescription string    `json:"rewardDescription"`
	DisplayExpiresAt  time.Time `json:"displayExpiresAt"`
}

func FromConsumeResult(r *commands.ConsumeResult) *ConsumeResponse {
	return &ConsumeResponse{
		SessionID:         r.SessionID,
		RewardDescription: r.RewardDescription,
		DisplayExpiresAt:  r.DisplayExpiresAt,
	}
}

type RedemptionSessionResponse struct {
	ID                uuid.UUID `json:"id"`
	State             string    `json:"state"`
	RewardDescription string    `json:"rewardDescription"`
	ConsumedAt        time.Time `json:"consumedAt"`
	DisplayExpiresAt  time.Time `json:"displayExpiresAt"`
	RemainingSeconds  int64     `json:"remainingSeconds"`
}

func FromRedemptionSessionView(v *queries.RedemptionSessionView) *RedemptionSessionResponse {
	return &RedemptionSessionResponse{
		ID:                v.ID,
		State:             v.State,
		RewardDescription: v.RewardDescription,
		ConsumedAt:        v.ConsumedAt,
		DisplayExpiresAt:  v.DisplayExpiresAt,
		RemainingSeconds:  v.RemainingSeconds,
	}
}

type MembershipCardResponse struct {
	MembershipID      uuid.UUID  `json:"membershipId"`
	StampsBalance     int32      `json:"stampsBalance"`
	TotalEarned       int32      `json:"totalEarned"`
	RewardThreshold   int32      `json:"rewardThreshold"`
	RewardDescription string     `json:"rewardDescription"`
	RewardUnlocked    bool       `json:"rewardUnlocked"`
	ProximityMessage  *string    `json:"proximityMessage,omitempty"`
	NextEligibleAt    *time.Time `json:"nextEligibleAt,omitempty"`
}

func FromMembershipCardView(v *queries.MembershipCardView) *MembershipCardResponse {
	return &MembershipCardResponse{
		MembershipID:      v.MembershipID,
		StampsBalance:     v.StampsBalance,
		TotalEarned:       v.TotalEarned,
		RewardThreshold:   v.RewardThreshold,
		RewardDescription: v.RewardDescription,
		RewardUnlocked:    v.RewardUnlocked,
		ProximityMessage:  v.ProximityMessage,
		NextEligibleAt:    v.NextEligibleAt,
	}
}

type ProgramCardResponse struct {
	PublicID          string `json:"publicId"`
	City              string `json:"city"`
	RewardThreshold   int32  `json:"rewardThreshold"`
	RewardDescription string `json:"rewardDescription"`
	Active            bool   `json:"active"`
}

func FromProgramCardView(v *queries.ProgramCardView) *ProgramCardResponse {
	return &ProgramCardResponse{
		PublicID:          v.PublicID,
		City:              v.City,
		RewardThreshold:   v.RewardThreshold,
		RewardDescription: v.RewardDescription,
		Active:            v.Active,
	}
}
