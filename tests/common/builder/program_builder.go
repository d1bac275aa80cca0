//go:build unit || e2e

package builder

import (
	"qwikker-loyalty/internal/domain/program"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProgramBuilder struct {
	ID                uuid.UUID
	PublicID          string
	BusinessID        uuid.UUID
	City              string
	RewardThreshold   int
	RewardDescription string
	MinGapMinutes     int
	Timezone          string
	Status            string
	ScanToken         string
	WalletPush        *program.WalletPushCredentials
}

func NewProgramBuilder() *ProgramBuilder {
	return &ProgramBuilder{
		ID:                uuid.New(),
		PublicID:          "beach-espresso",
		BusinessID:        uuid.New(),
		City:              "bournemouth",
		RewardThreshold:   10,
		RewardDescription: "free coffee",
		MinGapMinutes:     60,
		Timezone:          "Europe/London",
		Status:            "active",
		ScanToken:         "till-token-1",
		WalletPush:        nil,
	}
}

func (b *ProgramBuilder) With(mutate func(*ProgramBuilder)) *ProgramBuilder {
	mutate(b)
	return b
}

func (b *ProgramBuilder) BuildDomain() (*program.Program, error) {
	return program.NewProgram(
		b.ID,
		b.PublicID,
		b.BusinessID,
		b.City,
		b.RewardThreshold,
		b.RewardDescription,
		b.MinGapMinutes,
		b.Timezone,
		b.Status,
		b.ScanToken,
		b.WalletPush,
	)
}

func (b *ProgramBuilder) BuildRow() sqlc.LoyaltyPrograms {
	row := sqlc.LoyaltyPrograms{
		ID:                b.ID,
		PublicID:          b.PublicID,
		BusinessID:        b.BusinessID,
		City:              b.City,
		RewardThreshold:   int32(b.RewardThreshold),
		RewardDescription: b.RewardDescription,
		MinGapMinutes:     int32(b.MinGapMinutes),
		Timezone:          b.Timezone,
		Status:            b.Status,
		ScanToken:         b.ScanToken,
	}
	if b.WalletPush != nil {
		row.WalletpushApiKey = pgconv.StringToPgtype(b.WalletPush.APIKey)
		row.WalletpushTemplateID = pgconv.StringToPgtype(b.WalletPush.TemplateID)
	}
	return row
}
