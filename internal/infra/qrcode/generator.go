package qrcode

import (
	"net/url"

	"qwikker-loyalty/internal/pkg/config"
	"qwikker-loyalty/internal/pkg/errs"

	"github.com/skip2/go-qrcode"
)

const pngSize = 512

// Generator renders the till QR that customers scan to earn a stamp. The
// encoded URL carries the program's public ID and current scan token, so
// reprinting the QR is how a merchant rotates a leaked token.
type Generator struct {
	baseURL string
}

func NewGenerator(cfg config.LoyaltyConfig) *Generator {
	return &Generator{baseURL: cfg.EarnBaseURL}
}

func (g *Generator) EarnURL(publicID, token string) string {
	q := url.Values{}
	q.Set("p", publicID)
	q.Set("t", token)
	return g.baseURL + "?" + q.Encode()
}

func (g *Generator) TillPNG(publicID, token string) ([]byte, error) {
	png, err := qrcode.Encode(g.EarnURL(publicID, token), qrcode.Medium, pngSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to render till QR")
	}
	return png, nil
}
