package program

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidThreshold = errors.New("reward threshold must be positive")
	ErrInvalidTimezone  = errors.New("unknown IANA timezone")
	ErrInvalidStatus    = errors.New("invalid program status")
	ErrProgramInactive  = errors.New("program is not active")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusArchived Status = "archived"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusPaused, StatusArchived:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// WalletPushCredentials enable push updates to the customer's rendered pass.
// Programs without them simply skip wallet sync.
type WalletPushCredentials struct {
	APIKey     string
	TemplateID string
}

type Program struct {
	id                uuid.UUID
	publicID          string
	businessID        uuid.UUID
	city              string
	rewardThreshold   int
	rewardDescription string
	minGapMinutes     int
	timezone          string
	status            Status
	scanToken         string
	walletPush        *WalletPushCredentials
	location          *time.Location
}

func NewProgram(
	id uuid.UUID,
	publicID string,
	businessID uuid.UUID,
	city string,
	rewardThreshold int,
	rewardDescription string,
	minGapMinutes int,
	timezone string,
	status string,
	scanToken string,
	walletPush *WalletPushCredentials,
) (*Program, error) {
	if rewardThreshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	if minGapMinutes < 0 {
		minGapMinutes = 0
	}

	parsedStatus, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	return &Program{
		id:                id,
		publicID:          publicID,
		businessID:        businessID,
		city:              city,
		rewardThreshold:   rewardThreshold,
		rewardDescription: rewardDescription,
		minGapMinutes:     minGapMinutes,
		timezone:          timezone,
		status:            parsedStatus,
		scanToken:         scanToken,
		walletPush:        walletPush,
		location:          loc,
	}, nil
}

func (p *Program) IsActive() bool {
	return p.status == StatusActive
}

func (p *Program) ValidateAcceptsEarns() error {
	if !p.IsActive() {
		return ErrProgramInactive
	}
	return nil
}

// VerifyToken is the primary defense against copy-pasted earn requests:
// only a payload carrying the program's current token material is treated
// as originating from a physical scan of the till QR.
func (p *Program) VerifyToken(presented string) bool {
	if p.scanToken == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(p.scanToken), []byte(presented)) == 1
}

func (p *Program) MinGap() time.Duration {
	return time.Duration(p.minGapMinutes) * time.Minute
}

// LocalDate returns the merchant-local calendar date (YYYY-MM-DD) of t,
// the key for the rolling daily earn counter.
func (p *Program) LocalDate(t time.Time) string {
	return t.In(p.location).Format("2006-01-02")
}

func (p *Program) ID() uuid.UUID                      { return p.id }
func (p *Program) PublicID() string                   { return p.publicID }
func (p *Program) BusinessID() uuid.UUID              { return p.businessID }
func (p *Program) City() string                       { return p.city }
func (p *Program) RewardThreshold() int               { return p.rewardThreshold }
func (p *Program) RewardDescription() string          { return p.rewardDescription }
func (p *Program) MinGapMinutes() int                 { return p.minGapMinutes }
func (p *Program) Timezone() string                   { return p.timezone }
func (p *Program) Status() Status                     { return p.status }

// ScanToken is the raw material embedded in the printed till QR. It is
// served only through the merchant QR render path, never in card views.
func (p *Program) ScanToken() string { return p.scanToken }
func (p *Program) WalletPush() *WalletPushCredentials { return p.walletPush }
